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

// Package parse extracts the structured menu from the upstream markup.
//
// The page carries one anchor div per cafeteria (id "canteen_place_<n>")
// holding its display name, and one menu fragment per cafeteria
// (id "fragment-c<n>-1") holding a table of serving lines. Within a line
// row, meals are nested rows classed "mt-<n>".
package parse

import (
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/frcl/mensad/pkg/errors"
	"github.com/frcl/mensad/pkg/menu"
)

const (
	canteenAnchorPrefix = "canteen_place_"
	fragmentPrefix      = "fragment-c"
)

// Menu extracts the Track → ordered-meal structure from the upstream
// markup. Missing notes and tags default to empty. A page without any of
// the expected structural markers yields a PARSE_ERROR.
func Menu(markup string) (*menu.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, "reading upstream markup", err)
	}

	names := canteenNames(doc)
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeParse,
			"no cafeteria anchors in upstream markup")
	}

	out := &menu.Document{}
	doc.Find("div[id^='" + fragmentPrefix + "']").Each(func(_ int, frag *goquery.Selection) {
		id, _ := frag.Attr("id")
		name, ok := names[fragmentIndex(id)]
		if !ok {
			return
		}
		out.Mensen = append(out.Mensen, menu.Mensa{
			Name:  name,
			Lines: parseLines(frag),
		})
	})

	if len(out.Mensen) == 0 {
		return nil, errors.New(errors.ErrCodeParse,
			"no menu fragments in upstream markup")
	}
	return out, nil
}

// canteenNames maps the numeric canteen index to its display name.
func canteenNames(doc *goquery.Document) map[string]string {
	names := make(map[string]string)
	doc.Find("div[id^='" + canteenAnchorPrefix + "']").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		idx := strings.TrimPrefix(id, canteenAnchorPrefix)
		name := strings.TrimSpace(s.Find("h1").First().Text())
		if idx != "" && name != "" {
			names[idx] = name
		}
	})
	return names
}

// fragmentIndex extracts the canteen index from a fragment id like
// "fragment-c2-1".
func fragmentIndex(id string) string {
	rest := strings.TrimPrefix(id, fragmentPrefix)
	if i := strings.IndexByte(rest, '-'); i > 0 {
		return rest[:i]
	}
	return rest
}

func parseLines(frag *goquery.Selection) []menu.Line {
	var lines []menu.Line
	frag.Find("td.mensatype").Each(func(_ int, td *goquery.Selection) {
		name := firstText(td)
		if name == "" {
			return
		}
		lines = append(lines, menu.Line{
			Name:  name,
			Meals: parseMeals(td.Parent()),
		})
	})
	return lines
}

// firstText returns the first non-empty text chunk among the node's
// children. The line name cell carries the name as its leading content,
// sometimes followed by markup.
func firstText(s *goquery.Selection) string {
	var text string
	s.Contents().EachWithBreak(func(_ int, c *goquery.Selection) bool {
		if t := strings.TrimSpace(c.Text()); t != "" {
			text = t
			return false
		}
		return true
	})
	return text
}

func parseMeals(row *goquery.Selection) []menu.Meal {
	meals := []menu.Meal{}
	row.Find("tr[class^='mt-']").Each(func(_ int, mtr *goquery.Selection) {
		name := strings.TrimSpace(mtr.Find("b").First().Text())
		if name == "" {
			return
		}
		meals = append(meals, menu.Meal{
			Name:  name,
			Note:  strings.TrimSpace(mtr.Find("td.first span:not([class])").First().Text()),
			Price: strings.TrimSpace(mtr.Find("span.bgp.price_1").First().Text()),
			Tags:  parseTags(mtr),
		})
	})
	return meals
}

// parseTags collects dietary labels from the meal icon images, deduplicated
// in source order. Unknown icons are ignored.
func parseTags(mtr *goquery.Selection) []string {
	tags := []string{}
	seen := make(map[string]bool)
	mtr.Find("img.mealicon_2").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		tag, ok := menu.IconTags[path.Base(src)]
		if !ok || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	})
	return tags
}
