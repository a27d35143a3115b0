package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Title       string `field:"title" validate:"min=1,max=5"`
	Color       string `validate:"color"`
	DisplayName string `validate:"max=3"`
}

func newTestValidator(t *testing.T) *Validator {
	t.Helper()

	v, err := New(WithRule("color", "{0} must be a primary color", func(s string) bool {
		return s == "red" || s == "green" || s == "blue"
	}))
	require.NoError(t, err)

	return v
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t)
	require.NoError(t, v.Validate(sample{Title: "ok", Color: "red"}))
}

func TestValidate_FieldKeysAndMessages(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t)
	err := v.Validate(sample{Title: "", Color: "pink", DisplayName: "long"})
	require.Error(t, err)

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr, 3)
	require.Contains(t, verr, "title")
	require.Contains(t, verr, "display_name")
	require.Equal(t, "color must be a primary color", verr["color"])
	require.Contains(t, verr["title"], "title")
}

func TestValidate_LengthCountsRunes(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t)
	// 5 runes, 10 bytes
	require.NoError(t, v.Validate(sample{Title: "ñañañ", Color: "blue"}))
	require.Error(t, v.Validate(sample{Title: "ñañaña", Color: "blue"}))
}

func TestNew_RejectsRuleWithoutCheck(t *testing.T) {
	t.Parallel()

	_, err := New(WithRule("broken", "{0} is broken", nil))
	require.ErrorIs(t, err, ErrInvalidRule)

	_, err = New(WithRule("  ", "{0}", func(string) bool { return true }))
	require.ErrorIs(t, err, ErrInvalidRule)
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	require.Equal(t, "validation error", ValidationError{}.Error())
	require.Equal(t, `{"name":"bad"}`, ValidationError{"name": "bad"}.Error())
}
