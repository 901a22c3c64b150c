package main

import (
	"converter/internal/converter"
	"converter/pkg/domain"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func unitsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units [category]",
		Short: "Lists categories and their units",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var only domain.Category
			if len(args) == 1 {
				c, err := domain.ParseCategory(args[0])
				if err != nil {
					return err //nolint: wrapcheck
				}
				only = c
			}

			conv, err := converter.New(converter.Deps{}, converter.NewOptions(a.cfg))
			if err != nil {
				return err //nolint: wrapcheck
			}

			out := cmd.OutOrStdout()
			for _, info := range conv.Catalog(cmd.Context()) {
				if only != "" && info.Category != only {
					continue
				}

				names := make([]string, len(info.Units))
				for i, u := range info.Units {
					names[i] = string(u)
				}

				header := fmt.Sprintf("%s (%s", info.Category, info.Kind)
				if info.BaseUnit != "" {
					header += ", base " + string(info.BaseUnit)
				}
				if _, err = fmt.Fprintf(out, "%s): %s\n", header, strings.Join(names, ", ")); err != nil {
					return err //nolint: wrapcheck
				}
			}

			return nil
		},
	}

	return cmd
}
