package novel

import (
	"encoding/json"
	"fmt"

	"bookstore/internal/validation"
)

const (
	MaxTitleLength  = 50
	MaxAuthorLength = 50

	FirstYear   = 1
	CurrentYear = 2026
)

// Novel is one catalog entry. It is validated by New and cannot be changed
// afterwards; the zero value is not a valid entry.
type Novel struct {
	title         string
	author        string
	yearPublished int
}

type fields struct {
	Title         string `validate:"notblank,max=50"`
	Author        string `validate:"notblank,max=50"`
	YearPublished int    `validate:"gte=1,lte=2026"`
}

// New validates the given attributes and returns the entry. The returned
// error matches validation.ErrValidation.
func New(title, author string, yearPublished int) (Novel, error) {
	if err := validation.Struct(fields{
		Title:         title,
		Author:        author,
		YearPublished: yearPublished,
	}); err != nil {
		return Novel{}, fmt.Errorf("novel %q: %w", title, err)
	}

	return Novel{
		title:         title,
		author:        author,
		yearPublished: yearPublished,
	}, nil
}

func (n Novel) Title() string      { return n.title }
func (n Novel) Author() string     { return n.author }
func (n Novel) YearPublished() int { return n.yearPublished }

// IsZero reports whether n was never populated by New.
func (n Novel) IsZero() bool {
	return n == Novel{}
}

func (n Novel) String() string {
	return fmt.Sprintf("%s by %s, %d", n.title, n.author, n.yearPublished)
}

type novelJSON struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	YearPublished int    `json:"year_published"`
}

func (n Novel) MarshalJSON() ([]byte, error) {
	return json.Marshal(novelJSON{
		Title:         n.title,
		Author:        n.author,
		YearPublished: n.yearPublished,
	})
}
