package errors_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/jugandoyeducando/marketmaster/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestSchemaError(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		err := pkgerrors.NewSchemaError("erp", "Valuni", "not found in header")
		assert.Equal(t, `schema error for erp: required column "Valuni" not found in header`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
		assert.True(t, pkgerrors.IsInvalidInput(err))
	})

	t.Run("missing worksheet", func(t *testing.T) {
		err := &pkgerrors.SchemaError{Platform: "meli-medellin", Sheet: "Publicaciones", Message: "not found in workbook"}
		assert.Equal(t, `schema error for meli-medellin: worksheet "Publicaciones" not found in workbook`, err.Error())
	})

	t.Run("bare message", func(t *testing.T) {
		err := &pkgerrors.SchemaError{Platform: "wix", Message: "empty export"}
		assert.Equal(t, "schema error for wix: empty export", err.Error())
	})

	t.Run("wrapped", func(t *testing.T) {
		base := pkgerrors.NewSchemaError("erp", "Codpro", "not found in header")
		wrapped := fmt.Errorf("parse extract: %w", base)

		var schemaErr *pkgerrors.SchemaError
		require.ErrorAs(t, wrapped, &schemaErr)
		assert.Equal(t, "Codpro", schemaErr.Column)
		assert.True(t, pkgerrors.IsInvalidInput(wrapped))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with row", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "csv", File: "extract.csv", Row: 42, Message: "bad number"}
		assert.Equal(t, "parse error in csv file extract.csv at row 42: bad number", err.Error())
		assert.True(t, pkgerrors.IsInvalidInput(err))
	})

	t.Run("without row", func(t *testing.T) {
		err := pkgerrors.NewParseError("xlsx", "export.xlsx", "zip: not a valid zip file", nil)
		assert.Equal(t, "parse error in xlsx file export.xlsx: zip: not a valid zip file", err.Error())
	})

	t.Run("without file", func(t *testing.T) {
		err := pkgerrors.NewParseError("yaml", "", "bad indent", nil)
		assert.Equal(t, "yaml parse error: bad indent", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := pkgerrors.NewParseError("csv", "f.csv", cause.Error(), cause)
		assert.ErrorIs(t, err, cause)
	})
}

func TestIOError(t *testing.T) {
	cause := fs.ErrPermission
	err := pkgerrors.NewIOError("write", "/tmp/out.csv", cause)
	assert.Equal(t, "IO error during write of /tmp/out.csv: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)

	bare := pkgerrors.NewIOError("rename", "", errors.New("boom"))
	assert.Equal(t, "IO error during rename: boom", bare.Error())
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("rappi-bogota", "store mapping is required", nil)
	assert.Equal(t, "configuration error in rappi-bogota: store mapping is required", err.Error())

	bare := pkgerrors.NewConfigError("", "no platform selected", nil)
	assert.Equal(t, "configuration error: no platform selected", bare.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, pkgerrors.IsNotFound(pkgerrors.ErrNotFound))
	assert.True(t, pkgerrors.IsNotFound(fmt.Errorf("lookup: %w", pkgerrors.ErrNotFound)))
	assert.False(t, pkgerrors.IsNotFound(errors.New("other")))
}

func TestUnknownPlatformSentinel(t *testing.T) {
	err := fmt.Errorf("%w: %q", pkgerrors.ErrUnknownPlatform, "amazon")
	assert.ErrorIs(t, err, pkgerrors.ErrUnknownPlatform)
	assert.False(t, pkgerrors.IsInvalidInput(err))
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "f", nil))
	assert.NoError(t, pkgerrors.WrapParse("csv", "f", nil))

	cause := errors.New("boom")
	err := pkgerrors.WrapIO("read", "f", cause)
	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Operation)

	err = pkgerrors.WrapParse("csv", "f", cause)
	var parseErr *pkgerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, cause)
}
