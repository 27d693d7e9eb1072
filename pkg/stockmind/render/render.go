package render

import (
	"fmt"
	"io"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

// Renderer renders a report to an output writer.
type Renderer interface {
	Render(w io.Writer, r *types.Report, opts Options) error
}

type Options struct {
	Color       bool
	Pretty      bool // indent json output
	MaxColWidth int
}

// New returns the renderer for a format name: text, table, json or yaml.
func New(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return textRenderer{}, nil
	case "table":
		return tableRenderer{}, nil
	case "json":
		return jsonRenderer{}, nil
	case "yaml":
		return yamlRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, table, json or yaml)", format)
	}
}
