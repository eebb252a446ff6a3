// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/assort/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "root_not_found",
			code:    errors.ErrRootNotFound,
			message: "root container missing",
			wantStr: "[ROOT_NOT_FOUND] root container missing",
		},
		{
			name:    "item_copy",
			code:    errors.ErrItemCopy,
			message: "copy failed",
			wantStr: "[ITEM_COPY] copy failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			require.NotNil(t, err)
			assert.Equal(t, tt.wantStr, err.Error())
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("disk full")
	err := errors.Wrap(inner, errors.ErrItemCopy, "copy failed")
	require.NotNil(t, err)

	assert.Equal(t, "[ITEM_COPY] copy failed: disk full", err.Error())
	assert.True(t, stderrors.Is(err, inner))
	assert.True(t, errors.IsErrorCode(err, errors.ErrItemCopy))
	assert.False(t, errors.IsErrorCode(err, errors.ErrRootNotFound))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrCorrespondence, "counts differ")
	b := errors.Newf(errors.ErrCorrespondence, "counts differ at %s", "a.asset")
	assert.True(t, stderrors.Is(a, b))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrItemCopy, "copy failed").
		WithDetail("path", "Textures/brick.asset").
		WithDetail("destination", "Root/Textures/brick.asset")

	assert.Equal(t, "Textures/brick.asset", err.Details["path"])
	assert.Equal(t, "Root/Textures/brick.asset", err.Details["destination"])
}

func TestGetErrorCode_PlainError(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}
