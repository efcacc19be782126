// Package format renders a resolved UTC instant through a strftime
// template.
package format

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DefaultTemplate is the 24-hour HH:MM rendering used when the user
// supplies no template of their own.
const DefaultTemplate = "%R"

// Formatter is a pre-compiled strftime template. Compiling up front lets
// a bad template fail before the host clock is even read, alongside the
// other argument errors.
type Formatter struct {
	pattern *strftime.Strftime
}

// New compiles template into a Formatter. An empty template compiles
// DefaultTemplate.
func New(template string) (*Formatter, error) {
	if template == "" {
		template = DefaultTemplate
	}
	pattern, err := strftime.New(template)
	if err != nil {
		return nil, fmt.Errorf("invalid time format %q: %w", template, err)
	}
	return &Formatter{pattern: pattern}, nil
}

// Format renders t through the compiled template.
func (f *Formatter) Format(t time.Time) string {
	return f.pattern.FormatString(t)
}
