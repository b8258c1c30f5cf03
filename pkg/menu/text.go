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
	"fmt"
	"strings"
	"text/tabwriter"
)

// ANSI escapes for the curl-facing text output. Terminals are the target
// medium for the text form.
const (
	ansiReset   = "\x1b[0m"
	ansiBold    = "\x1b[1m"
	ansiRed     = "\x1b[31m"
	ansiYellow  = "\x1b[33m"
	ansiMagenta = "\x1b[95m"
)

// Page wraps rendered content with the standard footer pointing at the
// usage endpoint.
func Page(content, host string) string {
	var sb strings.Builder
	sb.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "For usage info see %shttp://%s/help%s\n", ansiYellow, host, ansiReset)
	sb.WriteString("Found a bug? Open an issue at " + ansiYellow +
		"https://github.com/frcl/mensad" + ansiReset + "\n")
	return sb.String()
}

// ErrorPage renders a user-visible error body.
func ErrorPage(msg string) string {
	return fmt.Sprintf("%sERROR: %s%s\n---\n", ansiRed, msg, ansiReset)
}

// Text renders all serving lines of the cafeteria. Lines without meals are
// omitted.
func (m *Mensa) Text() string {
	var sb strings.Builder
	for i := range m.Lines {
		l := &m.Lines[i]
		if len(l.Meals) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s%s%s:\n", ansiBold, l.Name, ansiReset)
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// Text renders the serving line as an aligned table of
// name (note) | tags | price.
func (l *Line) Text() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, meal := range l.Meals {
		desc := meal.Name
		if meal.Note != "" {
			desc = fmt.Sprintf("%s (%s)", meal.Name, meal.Note)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", desc, boldTags(meal.Tags), meal.Price)
	}
	tw.Flush()
	sb.WriteByte('\n')
	return sb.String()
}

func boldTags(ts []string) string {
	if len(ts) == 0 {
		return ""
	}
	bold := make([]string, len(ts))
	for i, t := range ts {
		bold[i] = ansiBold + t + ansiReset
	}
	return strings.Join(bold, ",")
}
