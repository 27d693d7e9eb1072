package render

import (
	"encoding/json"
	"io"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, r *types.Report, opts Options) error {
	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(toModel(r))
}
