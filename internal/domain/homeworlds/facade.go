package homeworlds

// ReplayError wraps an error surfaced while replaying a sequence of actions,
// naming the index of the offending action so a caller can point at exactly
// which entry in the log failed (spec.md §4.7).
type ReplayError struct {
	Index int
	Err   error
}

func (e *ReplayError) Error() string {
	return e.Err.Error()
}

func (e *ReplayError) Unwrap() error { return e.Err }

// ApplyAction is the public entry point used by every host (CLI, tests,
// wire-form commands): it runs ValidateAction + TransitionKernel and, on
// success, appends the action to the resulting state's history. On failure
// it returns the original state unchanged, so a rejected action never
// partially mutates anything the caller can observe.
func ApplyAction(s GameState, a Action) (GameState, error) {
	ns, err := Apply(s, a)
	if err != nil {
		return s, err
	}
	ns.history = append(append([]Action{}, ns.history...), a)
	return ns, nil
}

// Replay applies a sequence of actions to a fresh Initial() state, in order,
// stopping at the first rejected action. It returns the resulting state
// either way: on success, the final state after every action; on failure,
// the state as of just before the rejected action, plus a ReplayError
// naming its index. Because ApplyAction is pure and deterministic, Replay
// of the same action sequence always reaches the same state (spec.md §8
// property 7) — it is simply repeated ApplyAction from Initial().
func Replay(actions []Action) (GameState, error) {
	s := Initial()
	for i, a := range actions {
		ns, err := ApplyAction(s, a)
		if err != nil {
			return s, &ReplayError{Index: i, Err: err}
		}
		s = ns
	}
	return s, nil
}
