package micromodel_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

func TestNew_PreservesDeclarationOrder(t *testing.T) {
	model, err := micromodel.New("Article",
		micromodel.Char("title", micromodel.Required()),
		micromodel.Text("body"),
		micromodel.FieldCollection("images", micromodel.Char("image")),
		micromodel.Char("field4"),
		micromodel.Char("field5"),
		micromodel.Char("afield"),
	)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}

	want := []string{"title", "body", "images", "field4", "field5", "afield"}
	if diff := cmp.Diff(want, model.FieldNames()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_RejectsDuplicateFieldNames(t *testing.T) {
	_, err := micromodel.New("Article",
		micromodel.Char("title"),
		micromodel.Text("title"),
	)
	if err == nil {
		t.Fatal("expected duplicate field error")
	}
}

func TestNew_RejectsMissingCompositePayload(t *testing.T) {
	_, err := micromodel.New("Article", micromodel.Field{Name: "author", Kind: micromodel.KindModel})
	if err == nil {
		t.Fatal("expected missing referenced model error")
	}
}

func TestNew_RejectsCompositeCollectionElement(t *testing.T) {
	author := micromodel.MustNew("Author", micromodel.Char("name"))
	_, err := micromodel.New("Article",
		micromodel.FieldCollection("authors", micromodel.ModelField("author", author)),
	)
	if err == nil {
		t.Fatal("expected composite element error")
	}
}

func TestFieldOptions(t *testing.T) {
	field := micromodel.Email("contact",
		micromodel.Required(),
		micromodel.Default("a@b.example"),
		micromodel.Label("Contact address"),
		micromodel.Help("Where we reach you"),
	)

	want := micromodel.Field{
		Name:     "contact",
		Kind:     micromodel.KindEmail,
		Label:    "Contact address",
		Help:     "Where we reach you",
		Required: true,
		Default:  "a@b.example",
	}
	if diff := cmp.Diff(want, field); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_FieldLookup(t *testing.T) {
	model := micromodel.MustNew("Article",
		micromodel.Char("title"),
		micromodel.Boolean("published", micromodel.Default(false)),
	)

	field, ok := model.Field("published")
	if !ok {
		t.Fatal("expected published field")
	}
	if field.Kind != micromodel.KindBoolean {
		t.Fatalf("expected boolean kind, got %q", field.Kind)
	}

	if _, ok := model.Field("missing"); ok {
		t.Fatal("unexpected lookup hit for missing field")
	}

	if model.Len() != 2 {
		t.Fatalf("expected 2 fields, got %d", model.Len())
	}
}

func TestFields_ReturnsDefensiveCopy(t *testing.T) {
	model := micromodel.MustNew("Article", micromodel.Char("title"))

	fields := model.Fields()
	fields[0].Name = "mutated"

	if _, ok := model.Field("title"); !ok {
		t.Fatal("model mutated through Fields() result")
	}
}
