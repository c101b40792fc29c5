package cli

import (
	"fmt"

	"prodtable/internal/columns"
	"prodtable/internal/output"
	"prodtable/internal/table"
	"prodtable/ui/console"

	"github.com/spf13/cobra"
)

func printCmd(flags *globalFlags) *cobra.Command {
	var (
		order   string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the product table once as plain text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := NewCLI(cmd.Context(), *flags)
			if err != nil {
				return err
			}
			defer c.Close()

			cfg := c.Config
			if order != "" {
				o, err := columns.Parse(order)
				if err != nil {
					return fmt.Errorf("invalid --order: %w", err)
				}
				cfg = cfg.WithColumnOrder(o)
			}

			set := table.DefaultColumns()
			console.Print(cmd.OutOrStdout(), console.Report{
				Title:   cfg.Title,
				Grid:    table.Build(c.Products, set, cfg.Order()),
				Columns: set,
				Widths:  table.DefaultWidths(set).Merge(set, cfg.Widths()),
				Summary: output.BuildSummary(c.Products),
				Color:   !noColor,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", "", "comma separated column order, e.g. id,name,quality,price,description,imageUrl")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colours")
	return cmd
}
