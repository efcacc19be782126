package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/utc/internal/config"
	"github.com/vk/utc/internal/ctxlog"
)

// fileSchema admits only `defaults` blocks at the top level.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "defaults"}},
}

// defaultsSchema admits the attributes a defaults block may carry.
var defaultsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "time_format"},
		{Name: "log_level"},
		{Name: "log_format"},
	},
}

// Loader implements config.Loader for HCL defaults files.
type Loader struct{}

// NewLoader creates a new HCL defaults-file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and translates the defaults file at path. A missing file
// yields an empty model; a file that exists but does not parse, or that
// carries unknown blocks or attributes, is an error.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("No defaults file present.", "path", path)
		return &config.Model{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading defaults file: %w", err)
	}
	logger.Debug("Defaults file read.", "path", path, "bytes", len(src))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	model := &config.Model{}
	for _, block := range content.Blocks {
		attrs, diags := block.Body.Content(defaultsSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
		}
		if err := l.translateDefaults(attrs.Attributes, model); err != nil {
			return nil, err
		}
	}
	logger.Debug("Defaults file translated into unified model.", "model", *model)

	return model, nil
}

// translateDefaults copies the block's attribute values into the model.
// Later blocks override earlier ones, like repeated flags would.
func (l *Loader) translateDefaults(attrs hcl.Attributes, model *config.Model) error {
	targets := map[string]*string{
		"time_format": &model.TimeFormat,
		"log_level":   &model.LogLevel,
		"log_format":  &model.LogFormat,
	}
	for name, target := range targets {
		attr, ok := attrs[name]
		if !ok {
			continue
		}
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate %s: %w", name, diags)
		}
		if val.Type() != cty.String {
			return fmt.Errorf("%s: attribute %q must be a string", attr.Range, name)
		}
		*target = val.AsString()
	}
	return nil
}
