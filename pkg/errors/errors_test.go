// Package errors_test provides unit tests for the AppError type, factory
// functions, and error-chain helpers defined in pkg/errors/errors.go.
package errors_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/go-selfies/pkg/errors"
)

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.CodeInternal, "unexpected failure"},
		{"kekulization", errors.ErrCodeKekulizationFailed, "aromatic ring not matchable"},
		{"invalid param", errors.CodeInvalidParam, "SMILES must not be empty"},
		{"unknown symbol", errors.ErrCodeSELFIESUnknownSymbol, "unexpected token"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)

			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail, "Detail should be empty for bare New()")
			assert.Nil(t, ae.Cause, "Cause should be nil for bare New()")
		})
	}
}

func TestError_FormatsCodeMessageDetail(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.ErrCodeSMILESUnknownElement, "unknown element")
	assert.Equal(t, "[SMI_002] unknown element", ae.Error())

	withDetail := ae.WithDetail("smiles=C1CCXC1")
	assert.Equal(t, "[SMI_002] unknown element: smiles=C1CCXC1", withDetail.Error())
	// The original is not mutated.
	assert.Empty(t, ae.Detail)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, errors.Wrap(nil, errors.CodeInternal, "ignored"))
}

func TestWrap_PreservesCodeForUnknown(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeBondCapacityExceeded, "too many bonds")
	outer := errors.Wrap(inner, errors.CodeUnknown, "encode failed")

	require.NotNil(t, outer)
	assert.Equal(t, errors.ErrCodeBondCapacityExceeded, outer.Code)
	assert.True(t, stderrors.Is(outer, outer))
	assert.Equal(t, inner, stderrors.Unwrap(outer))
}

func TestIsCode_TraversesChain(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeSELFIESMalformedSymbol, "hanging bracket")
	mid := fmt.Errorf("decode: %w", inner)
	outer := errors.Wrap(mid, errors.CodeInternal, "request failed")

	assert.True(t, errors.IsCode(outer, errors.ErrCodeSELFIESMalformedSymbol))
	assert.False(t, errors.IsCode(outer, errors.ErrCodeKekulizationFailed))
}

func TestIsEncoderError_IsDecoderError(t *testing.T) {
	t.Parallel()

	enc := errors.EncoderErr(errors.ErrCodeKekulizationFailed, "cannot kekulize", "c1ccc1")
	dec := errors.DecoderErr(errors.ErrCodeSELFIESUnknownSymbol, "unknown symbol", "[Xyz]", "[C][Xyz]")

	assert.True(t, errors.IsEncoderError(enc))
	assert.False(t, errors.IsDecoderError(enc))
	assert.True(t, errors.IsDecoderError(dec))
	assert.False(t, errors.IsEncoderError(dec))

	assert.Contains(t, enc.Detail, "c1ccc1")
	assert.Contains(t, dec.Detail, "[Xyz]")
	assert.Contains(t, dec.Detail, "[C][Xyz]")
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("plain")))

	ae := errors.New(errors.ErrCodeSMILESUnclosedRing, "ring 1 never closed")
	assert.Equal(t, errors.ErrCodeSMILESUnclosedRing, errors.GetCode(fmt.Errorf("x: %w", ae)))
}

func TestWithCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("boom")
	ae := errors.New(errors.CodeInternal, "wrapped").WithCause(cause)
	assert.Equal(t, cause, stderrors.Unwrap(ae))
}

func TestStack_ContainsCallSite(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.CodeInternal, "test")
	require.NotNil(t, ae)
	assert.True(t, strings.Contains(ae.Stack, "errors_test"), "stack should contain this test file")
}

//Personal.AI order the ending
