package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep("")
	assert.NoError(t, err, "expected valid config")
}

func TestValidateDeep_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantMsg string
	}{
		{name: "relative", baseURL: "api/v1", wantMsg: "scheme"},
		{name: "ftp scheme", baseURL: "ftp://example.com", wantMsg: "scheme"},
		{name: "missing host", baseURL: "https://", wantMsg: "missing host"},
		{name: "query string", baseURL: "https://example.com/api?x=1", wantMsg: "query string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			cfg.API.BaseURL = tt.baseURL

			err := cfg.ValidateDeep("")

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, "api.base_url", fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateDeep_FieldsMustIncludeID(t *testing.T) {
	cfg := validConfig(t)
	cfg.API.Fields = []string{"title", ""}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "api.fields", fieldErrs[0].Field)
	assert.Equal(t, "api.fields[1]", fieldErrs[1].Field)
}

func TestValidateDeep_DuplicatePageSizes(t *testing.T) {
	cfg := validConfig(t)
	cfg.Pagination.PageSizeOptions = []int{5, 10, 5}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Field, "page_size_options[2]")
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	cfg.DataDir = file

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "data_dir", fieldErrs[0].Field)
}

func TestValidateDeep_RunsBasicValidation(t *testing.T) {
	cfg := validConfig(t)
	cfg.Pagination.PageSize = 0

	err := cfg.ValidateDeep("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pagination.page_size")
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	assert.Empty(t, cfg.Warnings())

	cfg.Pagination.PageSize = 15
	cfg.API.UserAgent = ""
	assert.Len(t, cfg.Warnings(), 2)
}
