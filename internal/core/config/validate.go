package config

import (
	"fmt"
	"net/url"
	"os"
	"slices"

	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration
// including URL shape, field projection, page size options and file
// accessibility. The configPath argument specifies the config file location
// to validate (empty string skips config file check). This calls Validate()
// first for basic structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateAPI(),
		c.validatePagination(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []string {
	var warnings []string

	if !slices.Contains(c.Pagination.PageSizeOptions, c.Pagination.PageSize) {
		warnings = append(warnings, fmt.Sprintf(
			"pagination.page_size %d is not one of page_size_options; it will be added",
			c.Pagination.PageSize,
		))
	}

	if c.API.UserAgent == "" {
		warnings = append(warnings, "api.user_agent is empty; some APIs reject anonymous clients")
	}

	return warnings
}

// validateFileAccess checks the config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// absoluteHTTPURL validates that raw is an absolute http or https URL.
func absoluteHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	if u.RawQuery != "" {
		return fmt.Errorf("must not contain a query string")
	}
	return nil
}

func (c *Config) validateAPI() error {
	var errs criterio.FieldErrorsBuilder

	if err := absoluteHTTPURL(c.API.BaseURL); err != nil {
		errs = errs.Append("api.base_url", err)
	}

	if len(c.API.Fields) > 0 && !slices.Contains(c.API.Fields, "id") {
		errs = errs.Append("api.fields", fmt.Errorf("must include id, records are matched by it"))
	}

	for i, f := range c.API.Fields {
		if f == "" {
			errs = errs.Append(fmt.Sprintf("api.fields[%d]", i), fmt.Errorf("field name cannot be empty"))
		}
	}

	return errs.ToError()
}

func (c *Config) validatePagination() error {
	var errs criterio.FieldErrorsBuilder

	seen := make(map[int]bool, len(c.Pagination.PageSizeOptions))
	for i, size := range c.Pagination.PageSizeOptions {
		if seen[size] {
			errs = errs.Append(fmt.Sprintf("pagination.page_size_options[%d]", i), fmt.Errorf("duplicate page size %d", size))
		}
		seen[size] = true
	}

	return errs.ToError()
}
