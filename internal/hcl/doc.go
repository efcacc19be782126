// Package hcl provides the concrete HCL implementation of the
// defaults-file Loader interface defined in the `config` package. It is
// responsible for file parsing, schema checking, and translating
// attribute values into the format-agnostic model.
package hcl
