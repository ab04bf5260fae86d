package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   errors.New("underlying error"),
		}
		assert.Equal(t, "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "parse error", (&ParseError{}).Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		assert.Same(t, cause, err.Unwrap())
	})

	t.Run("wrapping a resource limit matches both sentinels", func(t *testing.T) {
		err := &ParseError{Path: "big.yaml", Cause: &ResourceLimitError{ResourceType: "file_size", Limit: 10, Actual: 20}}
		assert.ErrorIs(t, err, ErrParse)
		assert.ErrorIs(t, err, ErrResourceLimit)
		assert.NotErrorIs(t, err, ErrConfig)
	})
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "file_size", Limit: 1024, Actual: 2048, Message: "static file too large"}
	assert.Equal(t, "resource limit exceeded: file_size (limit: 1024, actual: 2048): static file too large", err.Error())
	assert.ErrorIs(t, err, ErrResourceLimit)
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "config", Message: "required"}
	assert.Equal(t, "configuration error for config: required", err.Error())
	assert.ErrorIs(t, err, ErrConfig)

	withValue := &ConfigError{Option: "dialect", Value: "2.0"}
	assert.Equal(t, "configuration error for dialect (value: 2.0)", withValue.Error())
}

func TestStateError(t *testing.T) {
	err := &StateError{Operation: "Document", State: "pending", Message: "assembly has not run"}
	assert.Equal(t, "state error: Document in state pending: assembly has not run", err.Error())
	assert.ErrorIs(t, err, ErrState)
}

func TestMergeError(t *testing.T) {
	err := &MergeError{Primary: "Info", Secondary: "Tag", Path: "info"}
	assert.Equal(t, "merge error: cannot merge Info with Tag at info", err.Error())
	assert.ErrorIs(t, err, ErrMerge)
}

func TestConversionError(t *testing.T) {
	err := &ConversionError{SourceVersion: "3.1.0", TargetVersion: "3.0.3", Path: "/components/schemas/Pet", Message: "dropped prefixItems"}
	assert.Equal(t, "conversion error (3.1.0 -> 3.0.3) at /components/schemas/Pet: dropped prefixItems", err.Error())
	assert.ErrorIs(t, err, ErrConversion)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Path: "/paths/~1pets/get", Field: "operationId", Message: "duplicate"}
	assert.Equal(t, "validation error at /paths/~1pets/get.operationId: duplicate", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("assembly: %w", &StateError{Operation: "Assemble"})

	var stateErr *StateError
	if assert.ErrorAs(t, wrapped, &stateErr) {
		assert.Equal(t, "Assemble", stateErr.Operation)
	}
	assert.False(t, errors.Is(wrapped, ErrParse))
}
