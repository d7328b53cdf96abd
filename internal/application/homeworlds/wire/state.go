package wire

import (
	"encoding/json"
	"fmt"

	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

// ShipDTO is one ship's wire form.
type ShipDTO struct {
	ID    string `json:"id"`
	Owner string `json:"owner"`
}

// SystemDTO is one system's wire form, display-only: round-tripping a state
// reconstructs it by replaying History, not by decoding Systems directly.
type SystemDTO struct {
	ID        string    `json:"id"`
	Homeworld bool      `json:"homeworld"`
	Owner     string    `json:"owner,omitempty"`
	Stars     []string  `json:"stars"`
	Ships     []ShipDTO `json:"ships"`
}

// StateDTO is the full wire form of a GameState: a display snapshot
// (Phase/ActivePlayer/Winner/Bank/Systems) plus the actual reconstruction
// source, History. UnmarshalState ignores the display fields and rebuilds
// the state by replaying History — the only way a GameState is ever
// produced (spec.md §4.7) — so a round trip can never desync from the
// engine's own rules.
type StateDTO struct {
	Phase        string      `json:"phase"`
	ActivePlayer string      `json:"active_player,omitempty"`
	Winner       string      `json:"winner,omitempty"`
	Bank         []string    `json:"bank"`
	Systems      []SystemDTO `json:"systems"`
	History      []ActionDTO `json:"history"`
}

func systemDTO(sys homeworlds.System) SystemDTO {
	stars := make([]string, 0, len(sys.Stars))
	for _, star := range sys.Stars {
		stars = append(stars, star.ID.String())
	}
	ships := make([]ShipDTO, 0, len(sys.Ships))
	for _, sh := range sys.Ships {
		ships = append(ships, ShipDTO{ID: sh.ID.String(), Owner: string(sh.Owner)})
	}
	return SystemDTO{
		ID:        string(sys.ID),
		Homeworld: sys.Homeworld,
		Owner:     string(sys.Owner),
		Stars:     stars,
		Ships:     ships,
	}
}

// StateToDTO builds the wire form of s.
func StateToDTO(s homeworlds.GameState) StateDTO {
	bank := s.BankPieces()
	bankIDs := make([]string, 0, len(bank))
	for _, id := range bank {
		bankIDs = append(bankIDs, id.String())
	}

	allSystems := s.AllSystems()
	systems := make([]SystemDTO, 0, len(allSystems))
	for _, sys := range allSystems {
		systems = append(systems, systemDTO(sys))
	}

	history := s.History()
	historyDTOs := make([]ActionDTO, 0, len(history))
	for _, a := range history {
		historyDTOs = append(historyDTOs, EncodeAction(a))
	}

	dto := StateDTO{
		Phase:   string(s.Phase()),
		Bank:    bankIDs,
		Systems: systems,
		History: historyDTOs,
	}
	if s.Phase() != homeworlds.PhaseEnded {
		dto.ActivePlayer = string(s.CurrentPlayer())
	}
	if winner, ok := s.Winner(); ok {
		dto.Winner = string(winner)
	}
	return dto
}

// MarshalState renders s as indented JSON.
func MarshalState(s homeworlds.GameState) ([]byte, error) {
	return MarshalStateDTO(StateToDTO(s))
}

// MarshalStateDTO renders an already-built StateDTO as indented JSON.
func MarshalStateDTO(dto StateDTO) ([]byte, error) {
	return json.MarshalIndent(dto, "", "  ")
}

// UnmarshalState parses a StateDTO (as produced by MarshalState) and rebuilds
// the GameState by replaying its History through homeworlds.Replay. Every
// other field in the DTO is informational only.
func UnmarshalState(data []byte) (homeworlds.GameState, error) {
	var dto StateDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return homeworlds.GameState{}, fmt.Errorf("invalid state json: %w", err)
	}
	return ReplayDTO(dto.History)
}

// ReplayDTO decodes a wire action list and replays it from Initial().
func ReplayDTO(dtos []ActionDTO) (homeworlds.GameState, error) {
	actions := make([]homeworlds.Action, 0, len(dtos))
	for i, dto := range dtos {
		a, err := DecodeAction(dto)
		if err != nil {
			return homeworlds.GameState{}, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	s, err := homeworlds.Replay(actions)
	if err != nil {
		return s, err
	}
	return s, nil
}
