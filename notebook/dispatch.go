package notebook

import (
	"html/template"

	"github.com/melisma/audiotensor/common/runctx"
)

// BatchRenderer renders one kind of batch into display markup. Renderers are
// selected by the runtime type of the batch, so hosts can register renderers
// for their own value types next to the built-in audio one.
type BatchRenderer interface {
	Matches(batch interface{}) bool
	RenderBatch(ctx runctx.RunContext, batch interface{}, labels []string, opts BatchOptions) (template.HTML, error)
}

var renderers = make([]BatchRenderer, 0)

func RegisterBatchRenderer(r BatchRenderer) {
	renderers = append(renderers, r)
}

func getRenderer(batch interface{}) BatchRenderer {
	for _, r := range renderers {
		if r.Matches(batch) {
			return r
		}
	}
	return nil
}
