package microforms

import (
	"context"
	"fmt"

	internalloader "github.com/zbyte64/micromodels-forms/internal/modeldef/loader"
	internalparser "github.com/zbyte64/micromodels-forms/internal/modeldef/parser"
	internalopenapi "github.com/zbyte64/micromodels-forms/internal/openapi"
	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
	"github.com/zbyte64/micromodels-forms/pkg/modeldef"
)

// NewDocumentLoader constructs a definition document loader using the
// internal implementation while keeping the concrete type hidden from
// consumers.
func NewDocumentLoader(options ...modeldef.LoaderOption) modeldef.Loader {
	cfg := modeldef.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

// NewDefinitionAdapter constructs the adapter for native YAML/JSON model
// definition documents.
func NewDefinitionAdapter(loader modeldef.Loader) modeldef.Adapter {
	return internalparser.NewAdapter(loader)
}

// NewOpenAPIAdapter constructs the adapter importing OpenAPI component
// schemas as micromodels.
func NewOpenAPIAdapter(loader modeldef.Loader) modeldef.Adapter {
	return internalopenapi.NewAdapter(loader)
}

// NewAdapterRegistry returns a registry with the built-in adapters
// registered: native definition documents first, then OpenAPI.
func NewAdapterRegistry(loader modeldef.Loader) *modeldef.Registry {
	registry := modeldef.NewRegistry()
	registry.MustRegister(NewDefinitionAdapter(loader))
	registry.MustRegister(NewOpenAPIAdapter(loader))
	return registry
}

// ImportModels loads the source, detects its format, and returns the
// micromodels it defines. It is the simplest entry point for callers that
// just want models out of a document on disk or over HTTP.
func ImportModels(ctx context.Context, src modeldef.Source, options ...modeldef.LoaderOption) ([]*micromodel.Model, error) {
	loader := NewDocumentLoader(options...)
	registry := NewAdapterRegistry(loader)

	doc, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	adapter, ok := registry.Detect(src, doc.Raw())
	if !ok {
		return nil, fmt.Errorf("microforms: no adapter recognizes document at %q", doc.Location())
	}
	return adapter.Models(ctx, doc)
}
