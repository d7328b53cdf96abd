package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
)

// NewValidateCommand creates the `validate` subcommand, which checks that
// every action in a log is well-formed (decodes cleanly to the engine's
// Action type) without applying any of them — a shape check, not a legality
// check. Use `replay` to find out whether a sequence is actually legal.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that every action in a log is well-formed, without applying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loadRunnerConfig()

			actionLog, err := readActionLog(args[0])
			if err != nil {
				return err
			}

			for i, dto := range actionLog.Actions {
				if _, err := wire.DecodeAction(dto); err != nil {
					return fmt.Errorf("action %d: %w", i, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d actions, all well-formed\n", len(actionLog.Actions))
			return nil
		},
	}
}
