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

import (
	"strings"
	"unicode"

	"github.com/frcl/mensad/pkg/errors"
)

// ResolveName resolves query against candidates by case-insensitive prefix
// match. Exactly one candidate must match; zero matches yield
// ErrCodeNotFound and multiple matches yield ErrCodeAmbiguousName.
func ResolveName(query string, candidates []string) (string, error) {
	var matches []string
	lq := strings.ToLower(query)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lq) {
			matches = append(matches, c)
		}
	}
	return single(query, matches)
}

// ResolveMensa resolves a user-supplied cafeteria name prefix to the full
// upstream name via the canonical short name table.
func ResolveMensa(query string) (string, error) {
	shorts := make([]string, 0, len(Shortnames))
	for short := range Shortnames {
		shorts = append(shorts, short)
	}
	short, err := ResolveName(query, shorts)
	if err != nil {
		return "", err
	}
	return Shortnames[short], nil
}

// ResolveLine resolves a user-supplied line query within a cafeteria.
// Purely numeric queries are short codes matched against line name
// suffixes ("3" matches "Linie 3"); anything else is a case-insensitive
// name prefix.
func (m *Mensa) ResolveLine(query string) (*Line, error) {
	names := m.LineNames()

	var name string
	var err error
	if isNumeric(query) {
		name, err = resolveSuffix(query, names)
	} else {
		name, err = ResolveName(query, names)
	}
	if err != nil {
		return nil, err
	}

	for i := range m.Lines {
		if m.Lines[i].Name == name {
			return &m.Lines[i], nil
		}
	}
	// names came from m.Lines, so the match is always found
	return nil, errors.New(errors.ErrCodeInternal, "resolved line vanished")
}

func resolveSuffix(query string, candidates []string) (string, error) {
	var matches []string
	for _, c := range candidates {
		if strings.HasSuffix(c, query) {
			matches = append(matches, c)
		}
	}
	return single(query, matches)
}

func single(query string, matches []string) (string, error) {
	switch len(matches) {
	case 0:
		return "", errors.NewWithContext(errors.ErrCodeNotFound,
			"unknown name", map[string]any{"query": query})
	case 1:
		return matches[0], nil
	default:
		return "", errors.NewWithContext(errors.ErrCodeAmbiguousName,
			"ambiguous short name", map[string]any{
				"query":   query,
				"matches": matches,
			})
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
