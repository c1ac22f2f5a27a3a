// Package planner computes restore plans.
//
// The planner is pure: given the outputs the compositor currently reports,
// the saved layout and the set of heads excluded by closed lids, it returns
// one Action per output in enumeration order. It never touches the
// compositor or the filesystem.
//
// Key responsibilities:
//   - Match outputs to saved entries by hardware identity, not port name
//   - Skip heads excluded by a closed lid, even when a saved entry exists
//   - Skip outputs whose identity is shared with another connected output
//   - Leave outputs without a saved entry untouched (Unmatched)
package planner
