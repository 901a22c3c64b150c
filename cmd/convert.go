package main

import (
	"converter/internal/converter"
	"converter/pkg/domain"
	"converter/pkg/logger"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNegativePrecision = errors.New("precision must not be negative")

// formatValue prints v with precision decimals, or in its shortest exact form
// when precision is 0.
func formatValue(v float64, precision int) string {
	if precision == 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

func convertCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Converts a value from one unit to another",
		Example: `  converter convert 1000 --category length --from meters --to kilometers
  converter convert --category temperature --from celsius --to fahrenheit -- -40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q", args[0])
			}

			category, _ := cmd.Flags().GetString("category")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			precision := a.cfg.Converter.Precision
			if cmd.Flags().Changed("precision") {
				precision, _ = cmd.Flags().GetInt("precision")
			}
			if precision < 0 {
				return errNegativePrecision
			}

			opts := converter.NewOptions(a.cfg)
			if lenient, _ := cmd.Flags().GetBool("lenient"); lenient {
				opts.Strict = false
			}

			conv, err := converter.New(converter.Deps{}, opts)
			if err != nil {
				logger.Error(ctx, "could not create converter", zap.Error(err))

				return err //nolint: wrapcheck
			}

			res, err := conv.Convert(ctx, domain.Conversion{
				Category: domain.Category(category),
				Value:    value,
				From:     domain.Unit(from),
				To:       domain.Unit(to),
			})
			if err != nil {
				if !converter.IsClientError(err) {
					logger.Error(ctx, "conversion failed", zap.Error(err))
				}

				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
				formatValue(res.Value, precision), res.From,
				formatValue(res.Result, precision), res.To)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().String("category", "", "Unit category (Length, Volume, Temperature)")
	cmd.Flags().String("from", "", "Source unit, defaults to the category's first unit")
	cmd.Flags().String("to", "", "Target unit, defaults to the category's first unit")
	cmd.Flags().Int("precision", 0, "Decimals to print, 0 for the shortest exact form (overrides config)")
	cmd.Flags().Bool("lenient", false, "Fall back to identity scaling for unknown units (overrides config)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
