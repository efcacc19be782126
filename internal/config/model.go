package config

// Model is the unified representation of the defaults file. Empty
// fields mean the file did not set them; explicit command-line flags
// always take precedence over these values.
type Model struct {
	TimeFormat string
	LogLevel   string
	LogFormat  string
}
