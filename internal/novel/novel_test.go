package novel

import (
	"encoding/json"
	"strings"
	"testing"

	"bookstore/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n, err := New("Animal Farm", "George Orwell", 1946)
	require.NoError(t, err)

	assert.Equal(t, "Animal Farm", n.Title())
	assert.Equal(t, "George Orwell", n.Author())
	assert.Equal(t, 1946, n.YearPublished())
	assert.False(t, n.IsZero())
}

func TestNew_TitleLength(t *testing.T) {
	t.Run("exactly max", func(t *testing.T) {
		_, err := New(strings.Repeat("a", MaxTitleLength), "Author", 2000)
		assert.NoError(t, err)
	})

	t.Run("one over max", func(t *testing.T) {
		_, err := New(strings.Repeat("a", MaxTitleLength+1), "Author", 2000)
		require.Error(t, err)
		assert.ErrorIs(t, err, validation.ErrValidation)
		assert.Contains(t, err.Error(), "title cannot be over 50 characters long")
	})

	t.Run("multibyte characters count once", func(t *testing.T) {
		_, err := New(strings.Repeat("’", MaxTitleLength), "Author", 2000)
		assert.NoError(t, err)
	})
}

func TestNew_AuthorLength(t *testing.T) {
	_, err := New("Title", strings.Repeat("b", MaxAuthorLength), 2000)
	assert.NoError(t, err)

	_, err = New("Title", strings.Repeat("b", MaxAuthorLength+1), 2000)
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrValidation)
	assert.Contains(t, err.Error(), "author cannot be over 50 characters long")
}

func TestNew_Blank(t *testing.T) {
	testCases := []struct {
		name   string
		title  string
		author string
		field  string
	}{
		{"empty title", "", "Author", "title"},
		{"blank title", "   ", "Author", "title"},
		{"empty author", "Title", "", "author"},
		{"blank author", "Title", "\t", "author"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := New(tc.title, tc.author, 2000)
			require.Error(t, err)
			assert.ErrorIs(t, err, validation.ErrValidation)
			assert.True(t, n.IsZero())

			details := validation.Details(err)
			require.Len(t, details, 1)
			assert.Equal(t, tc.field, details[0].Field)
			assert.Equal(t, tc.field+" must be provided", details[0].Message)
		})
	}
}

func TestNew_Year(t *testing.T) {
	testCases := []struct {
		year  int
		valid bool
	}{
		{FirstYear, true},
		{1924, true},
		{CurrentYear, true},
		{0, false},
		{-5, false},
		{CurrentYear + 1, false},
	}

	for _, tc := range testCases {
		_, err := New("Title", "Author", tc.year)
		if tc.valid {
			assert.NoError(t, err, "year %d", tc.year)
			continue
		}
		assert.ErrorIs(t, err, validation.ErrValidation, "year %d", tc.year)
		assert.Equal(t, "yearPublished", validation.Details(err)[0].Field)
	}
}

func TestNovel_String(t *testing.T) {
	n, err := New("A Passage to India", "E.M. Forster", 1924)
	require.NoError(t, err)

	assert.Equal(t, "A Passage to India by E.M. Forster, 1924", n.String())
}

func TestNovel_MarshalJSON(t *testing.T) {
	n, err := New("Lolita", "Vladimir Nabokov", 1955)
	require.NoError(t, err)

	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Lolita","author":"Vladimir Nabokov","year_published":1955}`, string(b))
}
