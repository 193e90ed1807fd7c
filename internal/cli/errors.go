package cli

import "errors"

var (
	// ErrUnsupportedPlatform is returned when no BrowserOS artifact exists
	// for the host's OS/architecture pair.
	ErrUnsupportedPlatform = errors.New("unsupported platform for BrowserOS install")
)
