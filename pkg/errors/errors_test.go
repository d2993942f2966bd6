package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("ops.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "ops.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: ops.yaml:12: unexpected token", err.Error())
	require.Equal(t, "parse error: ops.yaml: unexpected token", NewParseError("ops.yaml", 0, underlying).Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("ops[1].area", "move op requires \"area\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "ops[1].area", validationErr.Field)
	require.Contains(t, err.Error(), "validation error: ops[1].area")
}

func TestOpErrorIncludesPosition(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unknown part type")
	err := NewOpError(2, 14, "add", underlying)

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, "add", opErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "op 3 (add, line 14): unknown part type", err.Error())
	require.Equal(t, "op 1 (undo): unknown part type", NewOpError(0, 0, "undo", underlying).Error())
}
