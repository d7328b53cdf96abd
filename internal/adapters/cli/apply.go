package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/commands"
	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
)

func readActionDTO(path string) (wire.ActionDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return wire.ActionDTO{}, fmt.Errorf("read action file: %w", err)
	}
	var dto wire.ActionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return wire.ActionDTO{}, fmt.Errorf("parse action file: %w", err)
	}
	return dto, nil
}

// NewApplyCommand creates the `apply` subcommand, which applies a single
// action to a state file (as produced by `new` or `replay`'s JSON output)
// and prints the resulting state.
func NewApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <state-file> <action-file>",
		Short: "Apply one action to a state file and print the resulting state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadRunnerConfig()

			stateData, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read state file: %w", err)
			}
			state, err := wire.UnmarshalState(stateData)
			if err != nil {
				return fmt.Errorf("parse state file: %w", err)
			}

			actionDTO, err := readActionDTO(args[1])
			if err != nil {
				return err
			}

			m := newMediator()
			result, err := m.Send(context.Background(), &commands.ApplyActionCommand{State: state, Action: actionDTO})
			if err != nil {
				return fmt.Errorf("apply action: %w", err)
			}
			resp, ok := result.(*commands.ApplyActionResponse)
			if !ok {
				return fmt.Errorf("unexpected response type %T", result)
			}

			return renderState(cmd.OutOrStdout(), cfg, wire.StateToDTO(resp.State))
		},
	}
}
