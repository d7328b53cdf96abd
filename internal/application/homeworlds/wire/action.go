// Package wire is the JSON boundary between a host (CLI, session server,
// UI) and the pure homeworlds engine: DTOs with go-playground/validator
// struct tags, translated to and from the engine's internal Action sum
// type and GameState. Nothing in this package holds game-rule logic —
// that stays in internal/domain/homeworlds.
package wire

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

// ActionDTO is the wire envelope for every action kind. Exactly the fields
// relevant to Kind are populated. Only the setup fields carry required_if
// tags; for the other kinds a missing piece id is caught when DecodeAction
// parses it, and missing system ids are left for the engine to reject. One
// envelope is used rather than separate per-kind structs, mirroring the
// single discriminated envelope spec.md §6 describes.
type ActionDTO struct {
	Kind   string `json:"kind" validate:"required,oneof=setup move capture grow trade sacrifice overpopulation"`
	Player string `json:"player,omitempty" validate:"omitempty,oneof=player1 player2"`

	// Setup
	PieceID string `json:"piece_id,omitempty" validate:"required_if=Kind setup"`
	Role    string `json:"role,omitempty" validate:"required_if=Kind setup,omitempty,oneof=star1 star2 ship"`

	// Move
	ShipID         string `json:"ship_id,omitempty"`
	From           string `json:"from,omitempty"`
	To             string `json:"to,omitempty"`
	NewStarPieceID string `json:"new_star_piece_id,omitempty"`

	// Capture
	AttackerID string `json:"attacker_id,omitempty"`
	TargetID   string `json:"target_id,omitempty"`
	System     string `json:"system,omitempty"`

	// Grow
	ActingShipID   string `json:"acting_ship_id,omitempty"`
	NewShipPieceID string `json:"new_ship_piece_id,omitempty"`

	// Trade
	NewPieceID string `json:"new_piece_id,omitempty"`

	// Overpopulation
	Color string `json:"color,omitempty" validate:"omitempty,oneof=yellow green blue red"`

	// Sacrifice
	Followups []ActionDTO `json:"followups,omitempty" validate:"omitempty,dive"`
}

var validate = validator.New()

// DecodeAction validates dto and translates it into the engine's internal
// Action sum type. Validation failures surface as a wrapped validator.
// ValidationErrors; translation failures (a malformed piece id, or a move
// without exactly one destination) as a plain error. System ids are passed
// through unchecked.
func DecodeAction(dto ActionDTO) (homeworlds.Action, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("invalid action envelope: %w", err)
	}
	return decodeAction(dto)
}

func decodeAction(dto ActionDTO) (homeworlds.Action, error) {
	switch homeworlds.ActionKind(dto.Kind) {
	case homeworlds.KindSetup:
		pieceID, err := homeworlds.ParsePieceID(dto.PieceID)
		if err != nil {
			return nil, err
		}
		return homeworlds.SetupAction{
			Player:  homeworlds.Player(dto.Player),
			PieceID: pieceID,
			Role:    homeworlds.SetupRole(dto.Role),
		}, nil

	case homeworlds.KindMove:
		shipID, err := homeworlds.ParsePieceID(dto.ShipID)
		if err != nil {
			return nil, err
		}
		move := homeworlds.MoveAction{
			Player: homeworlds.Player(dto.Player),
			ShipID: shipID,
			From:   homeworlds.SystemID(dto.From),
		}
		switch {
		case dto.To != "" && dto.NewStarPieceID != "":
			return nil, fmt.Errorf("move requires exactly one of to or new_star_piece_id")
		case dto.To != "":
			to := homeworlds.SystemID(dto.To)
			move.To = &to
		case dto.NewStarPieceID != "":
			star, err := homeworlds.ParsePieceID(dto.NewStarPieceID)
			if err != nil {
				return nil, err
			}
			move.NewStarPieceID = &star
		default:
			return nil, fmt.Errorf("move requires exactly one of to or new_star_piece_id")
		}
		return move, nil

	case homeworlds.KindCapture:
		attackerID, err := homeworlds.ParsePieceID(dto.AttackerID)
		if err != nil {
			return nil, err
		}
		targetID, err := homeworlds.ParsePieceID(dto.TargetID)
		if err != nil {
			return nil, err
		}
		return homeworlds.CaptureAction{
			Player:     homeworlds.Player(dto.Player),
			AttackerID: attackerID,
			TargetID:   targetID,
			System:     homeworlds.SystemID(dto.System),
		}, nil

	case homeworlds.KindGrow:
		actingShipID, err := homeworlds.ParsePieceID(dto.ActingShipID)
		if err != nil {
			return nil, err
		}
		newShipPieceID, err := homeworlds.ParsePieceID(dto.NewShipPieceID)
		if err != nil {
			return nil, err
		}
		return homeworlds.GrowAction{
			Player:         homeworlds.Player(dto.Player),
			ActingShipID:   actingShipID,
			System:         homeworlds.SystemID(dto.System),
			NewShipPieceID: newShipPieceID,
		}, nil

	case homeworlds.KindTrade:
		shipID, err := homeworlds.ParsePieceID(dto.ShipID)
		if err != nil {
			return nil, err
		}
		newPieceID, err := homeworlds.ParsePieceID(dto.NewPieceID)
		if err != nil {
			return nil, err
		}
		return homeworlds.TradeAction{
			Player:     homeworlds.Player(dto.Player),
			ShipID:     shipID,
			System:     homeworlds.SystemID(dto.System),
			NewPieceID: newPieceID,
		}, nil

	case homeworlds.KindSacrifice:
		shipID, err := homeworlds.ParsePieceID(dto.ShipID)
		if err != nil {
			return nil, err
		}
		followups := make([]homeworlds.Action, 0, len(dto.Followups))
		for _, f := range dto.Followups {
			fa, err := decodeAction(f)
			if err != nil {
				return nil, err
			}
			followups = append(followups, fa)
		}
		return homeworlds.SacrificeAction{
			Player:    homeworlds.Player(dto.Player),
			ShipID:    shipID,
			System:    homeworlds.SystemID(dto.System),
			Followups: followups,
		}, nil

	case homeworlds.KindOverpopulation:
		return homeworlds.OverpopulationAction{
			Player: homeworlds.Player(dto.Player),
			System: homeworlds.SystemID(dto.System),
			Color:  homeworlds.Color(dto.Color),
		}, nil

	default:
		return nil, fmt.Errorf("unrecognized action kind %q", dto.Kind)
	}
}

// EncodeAction renders an internal Action back into its wire envelope, the
// inverse of DecodeAction. Used by MarshalState to serialize history and by
// hosts that want to echo back the action they just submitted.
func EncodeAction(a homeworlds.Action) ActionDTO {
	switch act := a.(type) {
	case homeworlds.SetupAction:
		return ActionDTO{Kind: string(homeworlds.KindSetup), Player: string(act.Player), PieceID: act.PieceID.String(), Role: string(act.Role)}

	case homeworlds.MoveAction:
		dto := ActionDTO{Kind: string(homeworlds.KindMove), Player: string(act.Player), ShipID: act.ShipID.String(), From: string(act.From)}
		if act.To != nil {
			dto.To = string(*act.To)
		}
		if act.NewStarPieceID != nil {
			dto.NewStarPieceID = act.NewStarPieceID.String()
		}
		return dto

	case homeworlds.CaptureAction:
		return ActionDTO{
			Kind: string(homeworlds.KindCapture), Player: string(act.Player),
			AttackerID: act.AttackerID.String(), TargetID: act.TargetID.String(), System: string(act.System),
		}

	case homeworlds.GrowAction:
		return ActionDTO{
			Kind: string(homeworlds.KindGrow), Player: string(act.Player),
			ActingShipID: act.ActingShipID.String(), System: string(act.System), NewShipPieceID: act.NewShipPieceID.String(),
		}

	case homeworlds.TradeAction:
		return ActionDTO{
			Kind: string(homeworlds.KindTrade), Player: string(act.Player),
			ShipID: act.ShipID.String(), System: string(act.System), NewPieceID: act.NewPieceID.String(),
		}

	case homeworlds.SacrificeAction:
		followups := make([]ActionDTO, 0, len(act.Followups))
		for _, f := range act.Followups {
			followups = append(followups, EncodeAction(f))
		}
		return ActionDTO{
			Kind: string(homeworlds.KindSacrifice), Player: string(act.Player),
			ShipID: act.ShipID.String(), System: string(act.System), Followups: followups,
		}

	case homeworlds.OverpopulationAction:
		return ActionDTO{
			Kind: string(homeworlds.KindOverpopulation), Player: string(act.Player),
			System: string(act.System), Color: string(act.Color),
		}

	default:
		return ActionDTO{Kind: "unknown"}
	}
}
