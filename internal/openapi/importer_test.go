package openapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

const petstoreYAML = `
openapi: 3.0.3
info:
  title: Petstore
  version: "1.0"
paths: {}
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        name:
          type: string
          title: Pet name
        age:
          type: integer
        weight:
          type: number
        adopted:
          type: boolean
        contact:
          type: string
          format: email
        homepage:
          type: string
          format: uri
        birthday:
          type: string
          format: date
        tags:
          type: array
          items:
            type: string
        owner:
          type: object
          properties:
            name:
              type: string
    Status:
      type: string
      enum: [available, pending]
`

func TestModels_Petstore(t *testing.T) {
	models, err := Models(context.Background(), []byte(petstoreYAML))
	require.NoError(t, err)
	require.Len(t, models, 1, "non-object components are skipped")

	pet := models[0]
	assert.Equal(t, "Pet", pet.Name())
	assert.Equal(t, []string{"adopted", "age", "birthday", "contact", "homepage", "name", "owner", "tags", "weight"}, pet.FieldNames())

	name, ok := pet.Field("name")
	require.True(t, ok)
	assert.Equal(t, micromodel.KindChar, name.Kind)
	assert.True(t, name.Required)
	assert.Equal(t, "Pet name", name.Label)

	age, _ := pet.Field("age")
	assert.Equal(t, micromodel.KindInteger, age.Kind)
	assert.False(t, age.Required)

	weight, _ := pet.Field("weight")
	assert.Equal(t, micromodel.KindFloat, weight.Kind)

	adopted, _ := pet.Field("adopted")
	assert.Equal(t, micromodel.KindBoolean, adopted.Kind)

	contact, _ := pet.Field("contact")
	assert.Equal(t, micromodel.KindEmail, contact.Kind)

	homepage, _ := pet.Field("homepage")
	assert.Equal(t, micromodel.KindURI, homepage.Kind)

	birthday, _ := pet.Field("birthday")
	assert.Equal(t, micromodel.KindDate, birthday.Kind)

	tags, _ := pet.Field("tags")
	require.Equal(t, micromodel.KindFieldCollection, tags.Kind)
	require.NotNil(t, tags.Elem)
	assert.Equal(t, micromodel.KindChar, tags.Elem.Kind)

	owner, _ := pet.Field("owner")
	require.Equal(t, micromodel.KindModel, owner.Kind)
	require.NotNil(t, owner.Ref)
	assert.Equal(t, "PetOwner", owner.Ref.Name())
	assert.Equal(t, []string{"name"}, owner.Ref.FieldNames())
}

func TestModels_NullableBoolean(t *testing.T) {
	doc := `
openapi: 3.0.3
info: {title: t, version: "1"}
paths: {}
components:
  schemas:
    Flag:
      type: object
      properties:
        enabled:
          type: boolean
          nullable: true
`
	models, err := Models(context.Background(), []byte(doc))
	require.NoError(t, err)

	enabled, ok := models[0].Field("enabled")
	require.True(t, ok)
	assert.Equal(t, micromodel.KindNullBoolean, enabled.Kind)
}

func TestModels_ObjectArray(t *testing.T) {
	doc := `
openapi: 3.0.3
info: {title: t, version: "1"}
paths: {}
components:
  schemas:
    Gallery:
      type: object
      properties:
        entries:
          type: array
          items:
            type: object
            properties:
              url:
                type: string
                format: uri
`
	models, err := Models(context.Background(), []byte(doc))
	require.NoError(t, err)

	entries, ok := models[0].Field("entries")
	require.True(t, ok)
	require.Equal(t, micromodel.KindModelCollection, entries.Kind)
	require.NotNil(t, entries.Ref)
	assert.Equal(t, "GalleryEntries", entries.Ref.Name())
}

func TestModels_NoComponents(t *testing.T) {
	doc := `
openapi: 3.0.3
info: {title: t, version: "1"}
paths: {}
`
	_, err := Models(context.Background(), []byte(doc))
	assert.Error(t, err)
}

func TestModels_EmptyPayload(t *testing.T) {
	_, err := Models(context.Background(), nil)
	assert.Error(t, err)
}

func TestDetectOpenAPI(t *testing.T) {
	assert.True(t, detectOpenAPI([]byte("openapi: 3.0.3")))
	assert.True(t, detectOpenAPI([]byte(`{"openapi": "3.0.3"}`)))
	assert.True(t, detectOpenAPI([]byte(`{"swagger": "2.0"}`)))
	assert.False(t, detectOpenAPI([]byte("models: []")))
	assert.False(t, detectOpenAPI([]byte(`{"models": []}`)))
	assert.False(t, detectOpenAPI(nil))
}
