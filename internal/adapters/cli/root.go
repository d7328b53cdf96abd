package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-go/internal/application/common"
	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/commands"
	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/queries"
	"github.com/andrescamacho/spacetraders-go/internal/infrastructure/config"
)

var configPath string

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "homeworlds",
		Short: "Binary Homeworlds CLI - run and inspect games through the rules engine",
		Long: `homeworlds drives the deterministic Binary Homeworlds rules engine from
the command line: start a fresh game, replay an action log, validate one
without applying it, or apply a single action to a saved state.

Examples:
  homeworlds new
  homeworlds replay game.json
  homeworlds validate game.json
  homeworlds apply state.json action.json`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (defaults to ./config.yaml, ./configs/config.yaml, /etc/homeworlds)")

	rootCmd.AddCommand(NewNewCommand())
	rootCmd.AddCommand(NewReplayCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewApplyCommand())

	return rootCmd
}

func loadRunnerConfig() *config.Config {
	return config.LoadConfigOrDefault(configPath)
}

// newMediator wires the application layer's commands/queries onto a fresh
// Mediator, the dispatch path every state-producing subcommand sends
// through instead of calling the façade directly.
func newMediator() common.Mediator {
	m := common.NewMediator()
	m.RegisterMiddleware(common.LoggingMiddleware)
	_ = common.RegisterHandler[*commands.ApplyActionCommand](m, commands.NewApplyActionHandler())
	_ = common.RegisterHandler[*queries.GetStateQuery](m, queries.NewGetStateHandler())
	_ = common.RegisterHandler[*queries.ReplayQuery](m, queries.NewReplayHandler())
	return m
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
