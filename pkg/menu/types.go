// Copyright (c) 2025 the mensad authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package menu

// Meal is a single menu entry on a serving line.
// Price stays the source-formatted currency string; it is never parsed
// into a numeric type.
type Meal struct {
	Name  string   `json:"name"`
	Note  string   `json:"note"`
	Price string   `json:"price"`
	Tags  []string `json:"tags"`
}

// Line is a serving line with its meals in source presentation order.
type Line struct {
	Name  string
	Meals []Meal
}

// Mensa is a cafeteria with its serving lines in source presentation order.
type Mensa struct {
	Name  string
	Lines []Line
}

// Document is the full menu for all cafeterias, parsed from one upstream
// page fetch.
type Document struct {
	Mensen []Mensa
}

// Lines is the wire form of a single mensa: line name to ordered meal list.
type Lines map[string][]Meal

// Menu is the wire form of a Document: mensa name to Lines.
type Menu map[string]Lines

// Mensa returns the cafeteria with the given full name.
func (d *Document) Mensa(name string) (*Mensa, bool) {
	for i := range d.Mensen {
		if d.Mensen[i].Name == name {
			return &d.Mensen[i], true
		}
	}
	return nil, false
}

// LineNames returns the serving line names in presentation order.
func (m *Mensa) LineNames() []string {
	names := make([]string, 0, len(m.Lines))
	for _, l := range m.Lines {
		names = append(names, l.Name)
	}
	return names
}

// AsMap converts a Mensa to its wire form.
func (m *Mensa) AsMap() Lines {
	out := make(Lines, len(m.Lines))
	for _, l := range m.Lines {
		meals := l.Meals
		if meals == nil {
			meals = []Meal{}
		}
		out[l.Name] = meals
	}
	return out
}

// AsMap converts a Document to its wire form:
//
//	{ "<mensa>": { "<line>": [ {name, note, price, tags}, ... ], ... }, ... }
func (d *Document) AsMap() Menu {
	out := make(Menu, len(d.Mensen))
	for i := range d.Mensen {
		out[d.Mensen[i].Name] = d.Mensen[i].AsMap()
	}
	return out
}
