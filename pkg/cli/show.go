/*
Copyright © 2025 the mensad authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/frcl/mensad/pkg/fetch"
	"github.com/frcl/mensad/pkg/menu"
	"github.com/frcl/mensad/pkg/parse"
	"github.com/frcl/mensad/pkg/serializers"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "fetch the current menu once and print it",
		ArgsUsage: "[mensa [line]]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   string(serializers.FormatTable),
				Usage:   "output format (json, yaml, table)",
			},
			&cli.StringFlag{
				Name:    "upstream",
				Value:   fetch.DefaultURL,
				Usage:   "upstream menu page URL",
				Sources: cli.EnvVars("MENSA_UPSTREAM_URL"),
			},
		},
		Action: runShow,
	}
}

func runShow(ctx context.Context, cmd *cli.Command) error {
	format := serializers.Format(cmd.String("output"))
	if format.IsUnknown() {
		return fmt.Errorf("unknown output format: %q (must be json, yaml, or table)", format)
	}

	client := fetch.New(cmd.String("upstream"))
	markup, err := client.Fetch(ctx)
	if err != nil {
		return err
	}

	doc, err := parse.Menu(markup)
	if err != nil {
		return err
	}

	data, err := selectMenu(doc, cmd.Args().Slice())
	if err != nil {
		return err
	}

	return serializers.NewStdoutWriter(format).Serialize(data)
}

// selectMenu narrows the parsed document to the requested mensa/line pair,
// keeping the nested wire shape regardless of filter depth.
func selectMenu(doc *menu.Document, args []string) (menu.Menu, error) {
	if len(args) == 0 {
		return doc.AsMap(), nil
	}

	name, err := menu.ResolveMensa(args[0])
	if err != nil {
		return nil, err
	}
	m, ok := doc.Mensa(name)
	if !ok {
		return nil, fmt.Errorf("cafeteria %q missing from upstream page", name)
	}

	if len(args) == 1 {
		return menu.Menu{m.Name: m.AsMap()}, nil
	}

	line, err := m.ResolveLine(args[1])
	if err != nil {
		return nil, err
	}
	return menu.Menu{m.Name: {line.Name: line.Meals}}, nil
}
