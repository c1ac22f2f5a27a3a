package planner

import (
	"github.com/danieljhkim/screenkeep/internal/display"
	"github.com/danieljhkim/screenkeep/internal/state"
)

// HeadFilter reports whether a head, by current port name, is excluded.
type HeadFilter interface {
	Contains(name string) bool
}

// BuildRestorePlan decides, for every current output in enumeration order,
// whether to apply its saved mode, skip it, or leave it untouched.
//
// Saved entries without a connected output produce no action.
func BuildRestorePlan(outputs []display.Output, layout *state.Layout, excluded HeadFilter) *RestorePlan {
	plan := NewRestorePlan()

	saved := map[string]state.Entry{}
	if layout != nil {
		saved = layout.Index()
	}
	collisions := display.Collisions(outputs)

	for _, o := range outputs {
		id := display.Resolve(o)
		key := id.Key()

		action := Action{
			Output:   o.Name,
			Identity: id,
			Current:  o.Mode,
		}

		// Lid exclusion goes by port name and takes precedence over a match.
		if excluded != nil && excluded.Contains(o.Name) {
			action.Kind = ActionSkip
			action.Reason = ReasonLidClosed
			plan.AddAction(action)
			continue
		}

		if _, shared := collisions[key]; shared {
			action.Kind = ActionSkip
			action.Reason = ReasonAmbiguousIdentity
			plan.AddAction(action)
			continue
		}

		entry, ok := saved[key]
		if !ok {
			action.Kind = ActionUnmatched
			plan.AddAction(action)
			continue
		}

		target := entry.Mode
		action.Kind = ActionApply
		action.Target = &target
		plan.AddAction(action)
	}

	return plan
}
