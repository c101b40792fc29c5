package cli

import (
	"context"

	"prodtable/ui/tui"
)

func runTUI(ctx context.Context, flags globalFlags) error {
	c, err := NewCLI(ctx, flags)
	if err != nil {
		return err
	}
	defer c.Close()

	return tui.Start(c.Config, c.Products)
}
