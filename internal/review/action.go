package review

import (
	"errors"
	"fmt"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/common"
)

// ErrVersionConflict marks a review action against a stale cell version. The
// caller must re-read the cell and retry; silent overwrites are disallowed.
var ErrVersionConflict = errors.New("cell version conflict")

// Review action names, recorded verbatim in audit entries.
const (
	ActionConfirm    = "confirm"
	ActionReject     = "reject"
	ActionManualEdit = "manual_edit"
)

// Action is one reviewer decision against a cell. Exactly one of ReviewState
// (confirm/reject) or ManualValue must be set. ExpectedVersion is the cell
// version the reviewer last read; a mismatch rejects the action.
type Action struct {
	ReviewState     *constants.ReviewState
	ManualValue     *string
	Reason          *string
	Actor           string
	ExpectedVersion int
}

// Validate rejects malformed actions before any state is touched.
func (a *Action) Validate() error {
	if a.Actor == "" {
		return common.NewAppError("VALIDATION_ERROR", "actor is required", common.ErrValidation)
	}
	if (a.ReviewState == nil) == (a.ManualValue == nil) {
		return common.NewAppError("VALIDATION_ERROR",
			"exactly one of review_state or manual_value must be set", common.ErrValidation)
	}
	if a.ReviewState != nil {
		switch *a.ReviewState {
		case constants.StateConfirmed, constants.StateRejected:
		default:
			return common.NewAppError("VALIDATION_ERROR",
				fmt.Sprintf("review_state %q cannot be set directly", *a.ReviewState), common.ErrValidation)
		}
	}
	return nil
}

// Name returns the audit action name for this action.
func (a *Action) Name() string {
	if a.ManualValue != nil {
		return ActionManualEdit
	}
	if a.ReviewState != nil && *a.ReviewState == constants.StateRejected {
		return ActionReject
	}
	return ActionConfirm
}

// TargetState resolves the state this action moves the cell into.
func (a *Action) TargetState() constants.ReviewState {
	if a.ManualValue != nil {
		return constants.StateManualUpdated
	}
	return *a.ReviewState
}

// CanTransition reports whether a review action may move a cell from one
// state to another. EXTRACTED and MISSING_DATA are reachable only at
// creation; every state accepts confirm, reject and manual edits.
func CanTransition(from, to constants.ReviewState) bool {
	switch to {
	case constants.StateConfirmed, constants.StateRejected, constants.StateManualUpdated:
		return true
	}
	return false
}
