package shop

import (
	"slices"
	"strings"

	"bookstore/internal/novel"
)

// DefaultExclude is the substring FilteredSortedTitles leaves out.
const DefaultExclude = "the"

// View is a title-keyed snapshot of a list of novels. When two novels share a
// title the later one replaces the earlier; the replaced titles are reported
// by Collisions. A View never changes after New returns.
type View struct {
	byTitle    map[string]novel.Novel
	titles     []string
	sorted     []string
	collisions []string
	exclude    string
}

type Option func(*View)

// WithExclude sets the substring, matched case-insensitively, that removes
// titles from FilteredSortedTitles. An empty substring removes nothing.
func WithExclude(substr string) Option {
	return func(v *View) {
		v.exclude = substr
	}
}

func New(entries []novel.Novel, opts ...Option) *View {
	v := &View{
		byTitle: make(map[string]novel.Novel, len(entries)),
		exclude: DefaultExclude,
	}
	for _, opt := range opts {
		opt(v)
	}

	for _, n := range entries {
		if _, exists := v.byTitle[n.Title()]; exists {
			v.collisions = append(v.collisions, n.Title())
		}
		v.byTitle[n.Title()] = n
	}

	v.titles = make([]string, 0, len(v.byTitle))
	exclude := strings.ToLower(v.exclude)
	for title := range v.byTitle {
		v.titles = append(v.titles, title)
		if exclude == "" || !strings.Contains(strings.ToLower(title), exclude) {
			v.sorted = append(v.sorted, title)
		}
	}
	slices.Sort(v.sorted)

	return v
}

func (v *View) Len() int { return len(v.byTitle) }

func (v *View) Get(title string) (novel.Novel, bool) {
	n, ok := v.byTitle[title]
	return n, ok
}

// Titles returns every distinct title in no particular order.
func (v *View) Titles() []string {
	return slices.Clone(v.titles)
}

// FilteredSortedTitles returns the titles not containing the exclude
// substring, in ascending order.
func (v *View) FilteredSortedTitles() []string {
	if v.sorted == nil {
		return []string{}
	}
	return slices.Clone(v.sorted)
}

// FilteredSortedEntries returns the novels behind FilteredSortedTitles.
func (v *View) FilteredSortedEntries() []novel.Novel {
	out := make([]novel.Novel, 0, len(v.sorted))
	for _, title := range v.sorted {
		out = append(out, v.byTitle[title])
	}
	return out
}

// Collisions lists, in input order, each title whose earlier entry was
// replaced during New. A title appears once per replacement.
func (v *View) Collisions() []string {
	return append([]string{}, v.collisions...)
}
