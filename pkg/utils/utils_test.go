package utils

import (
	"errors"
	"testing"

	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDigest(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{"empty", nil, "d41d8cd98f00b204e9800998ecf8427e"},
		{"hello", []byte("hello\n"), "b1946ac92492d2347c6235b4d2611184"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDigest(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 32)
		})
	}
}

func TestGenerateUUID(t *testing.T) {
	a, b := GenerateUUID(), GenerateUUID()
	assert.Len(t, a, 32)
	assert.NotContains(t, a, "-")
	assert.NotEqual(t, a, b)
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Endpoint string `json:"endpoint" validate:"required,url"`
		Name     string `json:"name" validate:"required"`
	}

	assert.NoError(t, ValidateStruct(&sample{Endpoint: "https://coveralls.io/api/v1/jobs", Name: "x"}))

	err := ValidateStruct(&sample{Endpoint: "not a url"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.Err{Code: errs.CodeConfig}))
	assert.Contains(t, err.Error(), "name field is required!")
	assert.Contains(t, err.Error(), "endpoint must be a valid URL")
}
