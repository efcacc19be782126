package config

import "context"

// Loader is the interface for a format-specific defaults-file loader.
type Loader interface {
	// Load reads the defaults file at path and translates it into the
	// format-agnostic model. A missing file is not an error; it yields
	// an empty Model.
	Load(ctx context.Context, path string) (*Model, error)
}
