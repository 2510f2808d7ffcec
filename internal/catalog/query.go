package catalog

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"bookstore/internal/novel"
	"bookstore/internal/validation"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	decadeSpan = 9
	percentage = 100.0
)

var yearRange = fmt.Sprintf("gte=%d,lte=%d", novel.FirstYear, novel.CurrentYear)

// UppercaseTitles yields every title upper-cased, in catalog order. Titles
// are converted as they are consumed.
func (c *Catalog) UppercaseTitles() iter.Seq[string] {
	return func(yield func(string) bool) {
		upper := cases.Upper(language.Und)
		for _, n := range c.entries {
			if !yield(upper.String(n.Title())) {
				return
			}
		}
	}
}

// TitlesContaining returns the titles containing substr, ignoring case, in
// catalog order.
func (c *Catalog) TitlesContaining(substr string) []string {
	substr = strings.ToLower(substr)
	titles := []string{}
	for _, n := range c.entries {
		if strings.Contains(strings.ToLower(n.Title()), substr) {
			titles = append(titles, n.Title())
		}
	}
	return titles
}

// TitlesAlphabetical returns every title sorted case-insensitively. Titles
// that compare equal keep their catalog order.
func (c *Catalog) TitlesAlphabetical() []string {
	titles := c.titles()
	slices.SortStableFunc(titles, compareIgnoreCase)
	return titles
}

// TitlesInDecade returns the titles published in [start, start+9], in
// catalog order.
func (c *Catalog) TitlesInDecade(start int) []string {
	titles := []string{}
	for _, n := range c.entries {
		y := n.YearPublished()
		if y >= start && y <= start+decadeSpan {
			titles = append(titles, n.Title())
		}
	}
	return titles
}

// LongestTitle returns the title with the most characters; the first one
// wins a tie. It is empty for an empty catalog.
func (c *Catalog) LongestTitle() string {
	longest := ""
	longestLen := 0
	for _, n := range c.entries {
		if l := utf8.RuneCountInString(n.Title()); l > longestLen {
			longest, longestLen = n.Title(), l
		}
	}
	return longest
}

// HasBookPublishedIn reports whether some novel was published in exactly
// year. Despite the name it does not check a range.
func (c *Catalog) HasBookPublishedIn(year int) (bool, error) {
	if err := validation.Var("year", year, yearRange); err != nil {
		return false, err
	}

	for _, n := range c.entries {
		if n.YearPublished() == year {
			return true, nil
		}
	}
	return false, nil
}

// CountTitlesContaining counts titles containing word, ignoring case. An
// empty word matches every title.
func (c *Catalog) CountTitlesContaining(word string) int {
	word = strings.ToLower(word)
	count := 0
	for _, n := range c.entries {
		if strings.Contains(strings.ToLower(n.Title()), word) {
			count++
		}
	}
	return count
}

// PercentPublishedBetween returns the share of novels, as a percentage,
// published in [first, last].
func (c *Catalog) PercentPublishedBetween(first, last int) (float64, error) {
	if first > last {
		return 0, validation.NewError("first", "first year must be less than or equal to last year")
	}
	if err := validation.Var("first", first, yearRange); err != nil {
		return 0, err
	}
	if err := validation.Var("last", last, yearRange); err != nil {
		return 0, err
	}
	if len(c.entries) == 0 {
		return 0, fmt.Errorf("%w: percentage of an empty catalog", ErrInvariantViolation)
	}

	count := 0
	for _, n := range c.entries {
		if y := n.YearPublished(); y >= first && y <= last {
			count++
		}
	}
	return float64(count) * percentage / float64(len(c.entries)), nil
}

// Oldest returns the novel with the smallest publication year, the first
// one on a tie. ok is false for an empty catalog.
func (c *Catalog) Oldest() (n novel.Novel, ok bool) {
	for _, e := range c.entries {
		if !ok || e.YearPublished() < n.YearPublished() {
			n, ok = e, true
		}
	}
	return n, ok
}

// WithTitleLength returns the novels whose title is exactly length
// characters long, in catalog order.
func (c *Catalog) WithTitleLength(length int) []novel.Novel {
	out := []novel.Novel{}
	for _, n := range c.entries {
		if utf8.RuneCountInString(n.Title()) == length {
			out = append(out, n)
		}
	}
	return out
}

func upperCase(titles []string) []string {
	upper := cases.Upper(language.Und)
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		out = append(out, upper.String(t))
	}
	return out
}

func (c *Catalog) titles() []string {
	titles := make([]string, 0, len(c.entries))
	for _, n := range c.entries {
		titles = append(titles, n.Title())
	}
	return titles
}

// compareIgnoreCase orders strings rune by rune, comparing differing runes
// first upper-cased and then lower-cased.
func compareIgnoreCase(a, b string) int {
	for a != "" && b != "" {
		ra, sa := utf8.DecodeRuneInString(a)
		rb, sb := utf8.DecodeRuneInString(b)
		a, b = a[sa:], b[sb:]
		if ra == rb {
			continue
		}
		ra, rb = unicode.ToUpper(ra), unicode.ToUpper(rb)
		if ra == rb {
			continue
		}
		ra, rb = unicode.ToLower(ra), unicode.ToLower(rb)
		if ra != rb {
			return int(ra) - int(rb)
		}
	}
	return len(a) - len(b)
}
