package report

import (
	"fmt"
	"io"
	"strconv"

	"bookstore/internal/catalog"
	"bookstore/internal/shop"
)

// Options holds the arguments of the individual reports.
type Options struct {
	Contains     string
	Decade       int
	PublishedIn  int
	CountWord    string
	PercentFirst int
	PercentLast  int
	TitleLength  int
	ShopExclude  string
}

func DefaultOptions() Options {
	return Options{
		Contains:     "the",
		Decade:       2000,
		PublishedIn:  1950,
		CountWord:    "heart",
		PercentFirst: 1940,
		PercentLast:  1950,
		TitleLength:  15,
		ShopExclude:  shop.DefaultExclude,
	}
}

// Write prints every catalog report followed by the shop view of the
// catalog. Nothing is printed when an argument in opts is rejected.
func Write(w io.Writer, c *catalog.Catalog, opts Options) error {
	published, err := c.HasBookPublishedIn(opts.PublishedIn)
	if err != nil {
		return fmt.Errorf("published in %d: %w", opts.PublishedIn, err)
	}
	percent, err := c.PercentPublishedBetween(opts.PercentFirst, opts.PercentLast)
	if err != nil {
		return fmt.Errorf("published between %d and %d: %w", opts.PercentFirst, opts.PercentLast, err)
	}

	s := NewSink(w)

	s.Heading("All Titles in UPPERCASE:")
	s.Seq(c.UppercaseTitles())

	s.Heading(fmt.Sprintf("Book Titles Containing '%s':", opts.Contains))
	s.Lines(c.TitlesContaining(opts.Contains))

	s.Heading("All Titles in Alphabetical Order:")
	s.Lines(c.TitlesAlphabetical())

	s.Heading(fmt.Sprintf("Books from the %ds:", opts.Decade))
	s.Lines(c.TitlesInDecade(opts.Decade))

	s.Heading("Longest Book Title:")
	s.Value(c.LongestTitle())

	s.Heading(fmt.Sprintf("Is there a book written in %d?", opts.PublishedIn))
	s.Value(published)

	s.Heading(fmt.Sprintf("How many books contain '%s'?", opts.CountWord))
	s.Value(c.CountTitlesContaining(opts.CountWord))

	s.Heading(fmt.Sprintf("Percentage of books written between %d and %d:", opts.PercentFirst, opts.PercentLast))
	s.Value(strconv.FormatFloat(percent, 'f', 2, 64) + "%")

	s.Heading("Oldest book:")
	if oldest, ok := c.Oldest(); ok {
		s.Value(oldest)
	}

	s.Heading(fmt.Sprintf("Books with titles %d characters long:", opts.TitleLength))
	for _, n := range c.WithTitleLength(opts.TitleLength) {
		s.Value(n.Title())
	}

	view := shop.New(c.Entries(), shop.WithExclude(opts.ShopExclude))

	s.Heading("All titles:")
	s.Lines(view.Titles())

	s.Heading("Sorted titles:")
	for _, n := range view.FilteredSortedEntries() {
		s.Value(n)
	}

	return s.Err()
}
