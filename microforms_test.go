package microforms_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	microforms "github.com/zbyte64/micromodels-forms"
	"github.com/zbyte64/micromodels-forms/pkg/convert"
	"github.com/zbyte64/micromodels-forms/pkg/forms"
	"github.com/zbyte64/micromodels-forms/pkg/modeldef"
)

const articleDefinition = `
models:
  - name: Article
    fields:
      - name: title
        kind: char
        required: true
      - name: body
        kind: text
        help: Markdown is <b>allowed</b>
      - name: contact
        kind: email
      - name: images
        kind: field-collection
        elem:
          kind: image
      - name: publishedAt
        kind: datetime
`

func TestImportModels_DefinitionToForm(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/article.yaml": {Data: []byte(articleDefinition)},
	}

	models, err := microforms.ImportModels(
		context.Background(),
		modeldef.FSSource("defs/article.yaml"),
		modeldef.WithFileSystem(fsys),
	)
	require.NoError(t, err)
	require.Len(t, models, 1)

	form, err := microforms.ModelForm(models[0])
	require.NoError(t, err)
	assert.Equal(t, "ArticleForm", form.Name())
	assert.Equal(t, []string{"title", "body", "contact", "images", "publishedAt"}, form.FieldNames())

	title, ok := form.Field("title")
	require.True(t, ok)
	assert.Equal(t, forms.FieldTypeText, title.Type)
	assert.False(t, title.HasValidator(forms.ValidatorOptional))

	body, _ := form.Field("body")
	assert.Equal(t, forms.FieldTypeTextArea, body.Type)
	assert.Equal(t, "Markdown is allowed", body.Description)

	contact, _ := form.Field("contact")
	assert.Equal(t, forms.FieldTypeText, contact.Type)
	assert.True(t, contact.HasValidator(forms.ValidatorEmail))

	images, _ := form.Field("images")
	require.Equal(t, forms.FieldTypeList, images.Type)
	require.NotNil(t, images.Items)
	assert.Equal(t, forms.FieldTypeFile, images.Items.Type)
	assert.Equal(t, "Images", images.Label)

	published, _ := form.Field("publishedAt")
	assert.Equal(t, forms.FieldTypeDateTime, published.Type)
	assert.Equal(t, "Published at", published.Label)
}

func TestImportModels_OpenAPIToForm(t *testing.T) {
	doc := `
openapi: 3.0.3
info: {title: Petstore, version: "1.0"}
paths: {}
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        name:
          type: string
        contact:
          type: string
          format: email
`
	fsys := fstest.MapFS{
		"api/petstore.yaml": {Data: []byte(doc)},
	}

	models, err := microforms.ImportModels(
		context.Background(),
		modeldef.FSSource("api/petstore.yaml"),
		modeldef.WithFileSystem(fsys),
	)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "Pet", models[0].Name())

	form, err := microforms.ModelForm(models[0], convert.Only("name", "contact"))
	require.NoError(t, err)
	assert.Equal(t, []string{"contact", "name"}, form.FieldNames())
}

func TestImportModels_UnrecognizedDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"readme.txt": {Data: []byte("just some prose")},
	}

	_, err := microforms.ImportModels(
		context.Background(),
		modeldef.FSSource("readme.txt"),
		modeldef.WithFileSystem(fsys),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no adapter recognizes")
}
