package oas2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefs_Petstore(t *testing.T) {
	doc := loadPetstore(t)

	got := make([][2]string, 0)
	for _, site := range doc.Refs() {
		got = append(got, [2]string{site.Path, site.Ref})
	}
	assert.Equal(t, [][2]string{
		{"paths./pets.get.parameters[0]", "#/parameters/limit"},
		{"paths./pets.get.responses.200.schema.items", "#/definitions/Pet"},
		{"paths./pets.get.responses.default", "#/responses/Error"},
		{"paths./pets.post.parameters[0].schema", "#/definitions/NewPet"},
		{"paths./pets.post.responses.200.schema", "#/definitions/Pet"},
		{"paths./pets/{id}", "shared.json#/paths/~1pets~1{id}"},
		{"definitions.Alias", "#/definitions/Pet"},
		{"definitions.Pet.allOf[0]", "#/definitions/NewPet"},
		{"responses.Error.schema", "#/definitions/Error"},
	}, got)
}

func TestRefs_SiteDetails(t *testing.T) {
	doc := loadPetstore(t)
	sites := doc.Refs()

	first := sites[0]
	assert.Equal(t, "#/paths/~1pets/get/parameters/0", first.Pointer)
	assert.True(t, first.Local)
	assert.Equal(t, "parameters", first.Section)
	assert.Equal(t, "limit", first.Name)

	var external bool
	for _, s := range sites {
		if s.Ref == "shared.json#/paths/~1pets~1{id}" {
			external = true
			assert.False(t, s.Local)
			assert.Equal(t, "paths./pets/{id}", s.Path)
			assert.Equal(t, "#/paths/~1pets~1{id}", s.Pointer)
			assert.Equal(t, "paths", s.Section)
			assert.Equal(t, "/pets/{id}", s.Name)
		}
	}
	assert.True(t, external)
}

func TestRefs_Empty(t *testing.T) {
	doc := &Document{Swagger: "2.0", Info: &Info{Title: "t"}}
	assert.Empty(t, doc.Refs())
}
