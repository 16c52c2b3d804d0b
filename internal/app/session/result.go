package session

import (
	"github.com/yigit/clubr/internal/pkg/apperrors"
)

// Outcome classifies what an intent did to the store.
type Outcome string

const (
	// OutcomeApplied means state changed (or, for pure transitions, the transition happened).
	OutcomeApplied Outcome = "applied"
	// OutcomeNoOp means a precondition was missing and nothing changed.
	OutcomeNoOp Outcome = "noop"
	// OutcomeRejected means the call was invalid in the current state; nothing changed.
	OutcomeRejected Outcome = "rejected"
)

// Result is returned by every intent.
type Result struct {
	Outcome Outcome
	Reason  string
	// Ref is the id of the record an intent created, if any.
	Ref string

	err   error
	state *State
}

// State returns the snapshot taken under the same lock the intent ran under.
// It is absent for calls rejected before reaching the store's state.
func (r Result) State() (State, bool) {
	if r.state == nil {
		return State{}, false
	}
	return *r.state, true
}

// Applied reports whether the intent changed state.
func (r Result) Applied() bool { return r.Outcome == OutcomeApplied }

// Err returns nil unless the intent was rejected.
func (r Result) Err() error {
	if r.Outcome != OutcomeRejected {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return apperrors.NewBadRequestError(r.Reason)
}

func applied() Result {
	return Result{Outcome: OutcomeApplied}
}

func created(ref string) Result {
	return Result{Outcome: OutcomeApplied, Ref: ref}
}

func noop(reason string) Result {
	return Result{Outcome: OutcomeNoOp, Reason: reason}
}

func rejected(sentinel error, reason string) Result {
	return Result{
		Outcome: OutcomeRejected,
		Reason:  reason,
		err:     apperrors.NewCustomError(sentinel, reason),
	}
}
