package parser

import (
	"context"
	"errors"

	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
	"github.com/zbyte64/micromodels-forms/pkg/modeldef"
)

// AdapterName is the registry identifier for native definition documents.
const AdapterName = "definition"

// Adapter wraps the definition loader/parser flow behind the modeldef
// adapter interface.
type Adapter struct {
	loader modeldef.Loader
}

// Ensure the implementation satisfies the public interface.
var _ modeldef.Adapter = (*Adapter)(nil)

// NewAdapter constructs a definition adapter with the supplied loader.
func NewAdapter(loader modeldef.Loader) *Adapter {
	return &Adapter{loader: loader}
}

// Name returns the adapter registry identifier.
func (a *Adapter) Name() string {
	return AdapterName
}

// Detect reports whether the raw payload appears to be a definition document.
func (a *Adapter) Detect(_ modeldef.Source, raw []byte) bool {
	return Detect(raw)
}

// Load fetches the raw definition document.
func (a *Adapter) Load(ctx context.Context, src modeldef.Source) (modeldef.Document, error) {
	if a == nil || a.loader == nil {
		return modeldef.Document{}, errors.New("definition adapter: loader is nil")
	}
	return a.loader.Load(ctx, src)
}

// Models parses the document into micromodels.
func (a *Adapter) Models(ctx context.Context, doc modeldef.Document) ([]*micromodel.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(doc.Raw())
}
