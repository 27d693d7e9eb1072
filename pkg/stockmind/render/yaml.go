package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

type yamlRenderer struct{}

func (yamlRenderer) Render(w io.Writer, r *types.Report, _ Options) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(toModel(r))
}
