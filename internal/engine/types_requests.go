package engine

// SaveRequest represents a request to capture the current layout.
type SaveRequest struct {
	// Profile names the layout file (default "default")
	Profile string

	// DryRun captures without writing the store
	DryRun bool

	// Auto names the profile after the fingerprint of the connected
	// displays, overriding Profile
	Auto bool
}

// RestoreRequest represents a request to restore a saved layout.
type RestoreRequest struct {
	// Profile names the layout file. Empty selects the profile saved for
	// the connected displays, or "default"
	Profile string

	// DryRun performs planning only without touching the compositor
	DryRun bool
}

// InfoRequest represents a request for connected head information.
type InfoRequest struct {
	// Profile is compared against the connected heads
	Profile string
}
