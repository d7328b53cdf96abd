package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/queries"
	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

// NewNewCommand creates the `new` subcommand, which prints the wire form of
// a brand new, empty game (Initial()) ready for setup actions.
func NewNewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Print a fresh game state, ready for setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadRunnerConfig()

			m := newMediator()
			resp, err := m.Send(context.Background(), &queries.GetStateQuery{State: homeworlds.Initial()})
			if err != nil {
				return fmt.Errorf("get state: %w", err)
			}
			result, ok := resp.(*queries.GetStateResponse)
			if !ok {
				return fmt.Errorf("unexpected response type %T", resp)
			}

			return renderState(cmd.OutOrStdout(), cfg, result.State)
		},
	}
}
