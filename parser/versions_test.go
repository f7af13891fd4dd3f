package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input  string
		want   OASVersion
		wantOK bool
	}{
		{"2.0", OASVersion20, true},
		{"3.0.0", OASVersion300, true},
		{"3.0.3", OASVersion303, true},
		{"3.0.4", OASVersion304, true},
		{"3.0", OASVersion300, true},
		{"3.0.9", OASVersion304, true},
		{"3.1.0-rc1", OASVersion310, true},
		{"3.1.2", OASVersion312, true},
		{"3.2.0", Unknown, false},
		{"1.2", Unknown, false},
		{"4.0.0", Unknown, false},
		{"swagger", Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVersion(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOASVersion_String(t *testing.T) {
	assert.Equal(t, "2.0", OASVersion20.String())
	assert.Equal(t, "3.1.1", OASVersion311.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", OASVersion(99).String())

	assert.True(t, OASVersion304.IsValid())
	assert.False(t, Unknown.IsValid())
	assert.False(t, OASVersion(-1).IsValid())
}
