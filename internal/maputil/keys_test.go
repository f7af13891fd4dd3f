package maputil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  []string
	}{
		{
			name:  "extension keys",
			input: map[string]any{"x-owner": "platform", "x-audience": "public", "x-internal": true},
			want:  []string{"x-audience", "x-internal", "x-owner"},
		},
		{
			name:  "paths sort bytewise",
			input: map[string]any{"/pets/{id}": nil, "/pets": nil, "/Pets": nil},
			want:  []string{"/Pets", "/pets", "/pets/{id}"},
		},
		{
			name:  "empty map",
			input: map[string]any{},
			want:  []string{},
		},
		{
			name:  "nil map",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortedKeys(tt.input))
		})
	}
}

func TestSortedKeys_RawMembers(t *testing.T) {
	members := map[string]json.RawMessage{
		"title":   json.RawMessage(`"t"`),
		"version": json.RawMessage(`"1"`),
		"license": json.RawMessage(`{}`),
	}
	assert.Equal(t, []string{"license", "title", "version"}, SortedKeys(members))
}
