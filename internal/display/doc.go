// Package display defines the output data model shared by every screenkeep
// component and the resolver that derives a stable identity for a physical
// display.
//
// Key concepts:
//   - Output: a head as currently reported by the compositor. Its Name is the
//     volatile port label (e.g. "DP-3") and is never part of the identity.
//   - Mode: the layout settings of a head (resolution, refresh, scale,
//     transform, position, enabled, adaptive sync).
//   - Identity: normalized make, model and serial. Identity.Key is the string
//     used to match saved entries against connected hardware.
//
// When a display reports no serial the key falls back to make and model only.
// Two identical displays without serials then share a key; callers detect the
// collision with Collisions and must not pick one of them silently.
package display
