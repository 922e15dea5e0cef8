package convert_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zbyte64/micromodels-forms/pkg/convert"
	"github.com/zbyte64/micromodels-forms/pkg/forms"
	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

func articleModel(t *testing.T) *micromodel.Model {
	t.Helper()

	model, err := micromodel.New("Article",
		micromodel.Char("title"),
		micromodel.Char("body"),
		micromodel.FieldCollection("images", micromodel.Char("image")),
		micromodel.Char("field4"),
		micromodel.Char("field5"),
		micromodel.Char("afield"),
	)
	if err != nil {
		t.Fatalf("article model: %v", err)
	}
	return model
}

func TestModelForm_OrderPreservation(t *testing.T) {
	form, err := convert.ModelForm(articleModel(t))
	if err != nil {
		t.Fatalf("model form: %v", err)
	}

	if form.Name() != "ArticleForm" {
		t.Fatalf("form name: got %q", form.Name())
	}
	want := []string{"title", "body", "images", "field4", "field5", "afield"}
	if diff := cmp.Diff(want, form.FieldNames()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestModelFields_OnlyKeepsDeclarationOrder(t *testing.T) {
	// Request order deliberately differs from declaration order.
	fields, err := convert.ModelFields(articleModel(t), convert.Only("afield", "title", "images"))
	if err != nil {
		t.Fatalf("model fields: %v", err)
	}

	var names []string
	for _, entry := range fields {
		names = append(names, entry.Name)
	}
	if diff := cmp.Diff([]string{"title", "images", "afield"}, names); diff != "" {
		t.Fatalf("only filter mismatch (-want +got):\n%s", diff)
	}
}

func TestModelFields_Exclude(t *testing.T) {
	fields, err := convert.ModelFields(articleModel(t), convert.Exclude("body", "field5"))
	if err != nil {
		t.Fatalf("model fields: %v", err)
	}

	var names []string
	for _, entry := range fields {
		names = append(names, entry.Name)
	}
	if diff := cmp.Diff([]string{"title", "images", "field4", "afield"}, names); diff != "" {
		t.Fatalf("exclude filter mismatch (-want +got):\n%s", diff)
	}
}

func TestModelFields_OnlyAndExcludeConflict(t *testing.T) {
	_, err := convert.ModelFields(articleModel(t), convert.Only("title"), convert.Exclude("body"))
	if !errors.Is(err, convert.ErrOnlyAndExclude) {
		t.Fatalf("expected ErrOnlyAndExclude, got %v", err)
	}
}

func TestModelFields_RequiresModel(t *testing.T) {
	if _, err := convert.ModelFields(nil); err == nil {
		t.Fatal("expected model error")
	}
}

func TestModelFields_SkipsUnmappedKinds(t *testing.T) {
	model := micromodel.MustNew("Mixed",
		micromodel.Char("title"),
		micromodel.Field{Name: "blob", Kind: micromodel.Kind("binary")},
		micromodel.Char("footer"),
	)

	var skipped []string
	fields, err := convert.ModelFields(model, convert.WithSkipObserver(func(name, reason string) {
		skipped = append(skipped, name+": "+reason)
	}))
	if err != nil {
		t.Fatalf("model fields: %v", err)
	}

	var names []string
	for _, entry := range fields {
		names = append(names, entry.Name)
	}
	if diff := cmp.Diff([]string{"title", "footer"}, names); diff != "" {
		t.Fatalf("skip omission mismatch (-want +got):\n%s", diff)
	}
	if len(skipped) != 1 || skipped[0] != `blob: no converter registered for kind "binary"` {
		t.Fatalf("skip observer: got %v", skipped)
	}
}

func TestModelFields_FailOnSkip(t *testing.T) {
	model := micromodel.MustNew("Mixed",
		micromodel.Field{Name: "blob", Kind: micromodel.Kind("binary")},
	)

	_, err := convert.ModelFields(model, convert.WithFailOnSkip())
	if err == nil {
		t.Fatal("expected skip error")
	}
}

func TestModelFields_PerFieldArgs(t *testing.T) {
	fields, err := convert.ModelFields(articleModel(t),
		convert.Only("title"),
		convert.WithFieldArgs(map[string]convert.FieldArgs{
			"title": {Label: "Headline"},
		}),
	)
	if err != nil {
		t.Fatalf("model fields: %v", err)
	}
	if fields[0].Field.Label != "Headline" {
		t.Fatalf("field args not applied: %q", fields[0].Field.Label)
	}
}

func TestModelForm_BuildTwiceIsStructurallyEqual(t *testing.T) {
	model := articleModel(t)

	first, err := convert.ModelForm(model)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := convert.ModelForm(model)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	if diff := cmp.Diff(first.FieldNames(), second.FieldNames()); diff != "" {
		t.Fatalf("field names differ (-first +second):\n%s", diff)
	}
	for _, name := range first.FieldNames() {
		a, _ := first.Field(name)
		b, _ := second.Field(name)
		if a.Type != b.Type || a.Label != b.Label || len(a.Validators) != len(b.Validators) {
			t.Fatalf("field %q differs structurally", name)
		}
	}
}

func TestModelForm_CustomConverter(t *testing.T) {
	model := micromodel.MustNew("Doc", micromodel.Char("title"))

	converter := convert.NewConverter(convert.WithFunc(micromodel.KindChar, convert.Simple(forms.FieldTypeTextArea)))
	form, err := convert.ModelForm(model, convert.WithConverter(converter))
	if err != nil {
		t.Fatalf("model form: %v", err)
	}

	field, _ := form.Field("title")
	if field.Type != forms.FieldTypeTextArea {
		t.Fatalf("custom converter not used: %q", field.Type)
	}
}
