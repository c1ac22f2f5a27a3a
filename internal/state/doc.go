// Package state persists saved display layouts.
//
// A Layout is the snapshot taken by `screenkeep save`: one Entry per display
// that was connected, keyed by its normalized hardware identity. Layouts are
// stored as JSON files in the XDG state directory, one file per profile, and
// are always replaced wholesale through an atomic write.
//
// Key concepts:
//   - Layout: the saved configuration, with a format version and fingerprint
//   - Entry: one display's identity and mode
//   - Capture: builds a Layout from the currently connected outputs
//   - LayoutStore: interface for loading and saving layouts
package state
