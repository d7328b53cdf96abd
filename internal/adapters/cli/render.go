package cli

import (
	"fmt"
	"io"

	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
	"github.com/andrescamacho/spacetraders-go/internal/infrastructure/config"
)

// renderState writes dto to w according to cfg.Runner.OutputFormat: the full
// wire-form JSON, or a short human-readable summary.
func renderState(w io.Writer, cfg *config.Config, dto wire.StateDTO) error {
	if cfg.Runner.OutputFormat == "text" {
		fmt.Fprintf(w, "phase: %s\n", dto.Phase)
		if dto.Winner != "" {
			fmt.Fprintf(w, "winner: %s\n", dto.Winner)
		} else {
			fmt.Fprintf(w, "active player: %s\n", dto.ActivePlayer)
		}
		fmt.Fprintf(w, "bank: %d pieces\n", len(dto.Bank))
		fmt.Fprintf(w, "systems: %d\n", len(dto.Systems))
		return nil
	}

	data, err := wire.MarshalStateDTO(dto)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
