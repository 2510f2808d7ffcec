package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string `validate:"notblank,max=5"`
	Count int    `validate:"gte=1,lte=3"`
}

func TestStruct_ValidInput(t *testing.T) {
	assert.NoError(t, Struct(testStruct{Name: "abc", Count: 2}))
}

func TestStruct_Blank(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		err := Struct(testStruct{Name: name, Count: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)

		details := Details(err)
		require.Len(t, details, 1)
		assert.Equal(t, "name", details[0].Field)
		assert.Equal(t, "name must be provided", details[0].Message)
	}
}

func TestStruct_MaxCountsCharacters(t *testing.T) {
	// five runes, more than five bytes
	assert.NoError(t, Struct(testStruct{Name: "ééééé", Count: 1}))

	err := Struct(testStruct{Name: "abcdef", Count: 1})
	require.Error(t, err)
	assert.Equal(t, "name cannot be over 5 characters long", err.Error())
}

func TestStruct_Range(t *testing.T) {
	testCases := []struct {
		count   int
		message string
	}{
		{1, ""},
		{3, ""},
		{0, "count must be at least 1"},
		{4, "count must be at most 3"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.count), func(t *testing.T) {
			err := Struct(testStruct{Name: "a", Count: tc.count})
			if tc.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestStruct_CollectsEveryField(t *testing.T) {
	err := Struct(testStruct{})
	require.Error(t, err)
	assert.Len(t, Details(err), 2)
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("year", 10, "gte=1,lte=20"))

	err := Var("year", 30, "gte=1,lte=20")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []FieldError{{Field: "year", Message: "year must be at most 20"}}, Details(err))
}

func TestNewError(t *testing.T) {
	err := NewError("first", "first must not exceed last")
	wrapped := fmt.Errorf("query: %w", err)

	assert.ErrorIs(t, wrapped, ErrValidation)
	assert.Equal(t, "first must not exceed last", err.Error())
	assert.Equal(t, "first", Details(wrapped)[0].Field)
}

func TestDetails_NonValidationError(t *testing.T) {
	assert.Nil(t, Details(errors.New("boom")))
	assert.Nil(t, Details(nil))
}
