// Package config defines the format-agnostic model for the optional
// defaults file, along with the Loader interface for reading it. The
// concrete HCL implementation lives in the `hcl` package; everything
// downstream of loading only ever sees the Model.
package config
