package openapi

import (
	"bytes"
	"context"
	"errors"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
	"github.com/zbyte64/micromodels-forms/pkg/modeldef"
)

// AdapterName is the registry identifier for OpenAPI documents.
const AdapterName = "openapi"

// Adapter imports OpenAPI component schemas through the modeldef adapter
// interface.
type Adapter struct {
	loader modeldef.Loader
}

// Ensure the implementation satisfies the public interface.
var _ modeldef.Adapter = (*Adapter)(nil)

// NewAdapter constructs an OpenAPI adapter with the supplied loader.
func NewAdapter(loader modeldef.Loader) *Adapter {
	return &Adapter{loader: loader}
}

// Name returns the adapter registry identifier.
func (a *Adapter) Name() string {
	return AdapterName
}

// Detect reports whether the raw payload appears to be OpenAPI.
func (a *Adapter) Detect(_ modeldef.Source, raw []byte) bool {
	return detectOpenAPI(raw)
}

// Load fetches the raw OpenAPI document.
func (a *Adapter) Load(ctx context.Context, src modeldef.Source) (modeldef.Document, error) {
	if a == nil || a.loader == nil {
		return modeldef.Document{}, errors.New("openapi adapter: loader is nil")
	}
	return a.loader.Load(ctx, src)
}

// Models converts the document's component schemas into micromodels.
func (a *Adapter) Models(ctx context.Context, doc modeldef.Document) ([]*micromodel.Model, error) {
	return Models(ctx, doc.Raw())
}

func detectOpenAPI(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' {
		var payload map[string]any
		if err := gojson.Unmarshal(trimmed, &payload); err == nil {
			if _, ok := payload["openapi"]; ok {
				return true
			}
			if _, ok := payload["swagger"]; ok {
				return true
			}
		}
		return false
	}
	lower := strings.ToLower(string(trimmed))
	return strings.Contains(lower, "openapi:") || strings.Contains(lower, "swagger:")
}
