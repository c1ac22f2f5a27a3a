package planner

import (
	"fmt"

	"github.com/danieljhkim/screenkeep/internal/display"
)

// ActionKind tags the variant of an Action.
type ActionKind string

// Action kinds
const (
	// ActionApply sets the output to the saved mode.
	ActionApply ActionKind = "apply"

	// ActionSkip leaves the output alone even though a decision was needed.
	ActionSkip ActionKind = "skip"

	// ActionUnmatched leaves an output without a saved entry untouched.
	ActionUnmatched ActionKind = "unmatched"
)

// Skip reasons
const (
	ReasonLidClosed         = "lid closed"
	ReasonAmbiguousIdentity = "ambiguous identity"
)

// Action is the planned outcome for one connected output.
type Action struct {
	Kind ActionKind `json:"kind"`

	// Output is the current port name of the head
	Output string `json:"output"`

	// Identity is the resolved hardware identity
	Identity display.Identity `json:"identity"`

	// Target is the saved mode (ActionApply only)
	Target *display.Mode `json:"target,omitempty"`

	// Current is the mode the compositor reported at planning time
	Current display.Mode `json:"current"`

	// Reason explains an ActionSkip
	Reason string `json:"reason,omitempty"`
}

// UpToDate reports whether an apply action would not change anything.
func (a Action) UpToDate() bool {
	return a.Kind == ActionApply && a.Target != nil && a.Target.Equal(a.Current)
}

// String renders the action for logs and dry runs.
func (a Action) String() string {
	switch a.Kind {
	case ActionApply:
		return fmt.Sprintf("apply %s (%s): %s", a.Output, a.Identity.Key(), a.Target)
	case ActionSkip:
		return fmt.Sprintf("skip %s (%s): %s", a.Output, a.Identity.Key(), a.Reason)
	default:
		return fmt.Sprintf("leave %s (%s): no saved entry", a.Output, a.Identity.Key())
	}
}

// RestorePlan is the ordered list of actions for one restore.
type RestorePlan struct {
	Actions []Action `json:"actions"`
}

// NewRestorePlan creates a new empty RestorePlan.
func NewRestorePlan() *RestorePlan {
	return &RestorePlan{
		Actions: []Action{},
	}
}

// AddAction appends an action to the plan.
func (p *RestorePlan) AddAction(a Action) {
	p.Actions = append(p.Actions, a)
}

// Applies returns the apply actions in order.
func (p *RestorePlan) Applies() []Action {
	var applies []Action
	for _, a := range p.Actions {
		if a.Kind == ActionApply {
			applies = append(applies, a)
		}
	}
	return applies
}

// Count returns the number of actions of a kind.
func (p *RestorePlan) Count(kind ActionKind) int {
	n := 0
	for _, a := range p.Actions {
		if a.Kind == kind {
			n++
		}
	}
	return n
}
