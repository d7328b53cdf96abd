package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/queries"
	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
)

// ActionLogFile is the on-disk shape of a scenario: a JSON object whose
// "actions" field lists wire actions, applied in order from Initial().
type ActionLogFile struct {
	Actions []wire.ActionDTO `json:"actions"`
}

func readActionLog(path string) (ActionLogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ActionLogFile{}, fmt.Errorf("read action log: %w", err)
	}
	var file ActionLogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return ActionLogFile{}, fmt.Errorf("parse action log: %w", err)
	}
	return file, nil
}

// NewReplayCommand creates the `replay` subcommand, which decodes an action
// log and replays it from Initial() through the engine, printing the
// resulting state. If an action is rejected, replay stops at that point and
// the rejected index is logged before the command returns an error.
func NewReplayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Replay an action log through the engine and print the resulting state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadRunnerConfig()
			reqID := newRequestID("replay")

			actionLog, err := readActionLog(args[0])
			if err != nil {
				return err
			}

			m := newMediator()
			result, err := m.Send(context.Background(), &queries.ReplayQuery{Actions: actionLog.Actions})
			if err != nil {
				return fmt.Errorf("replay: %w", err)
			}
			resp, ok := result.(*queries.ReplayResponse)
			if !ok {
				return fmt.Errorf("unexpected response type %T", result)
			}

			if resp.Err != nil {
				log.Printf("[%s] action %d rejected: %v", reqID, resp.FailedIndex, resp.Err)
				return fmt.Errorf("replay failed: %w", resp.Err)
			}

			return renderState(cmd.OutOrStdout(), cfg, resp.State)
		},
	}
}
