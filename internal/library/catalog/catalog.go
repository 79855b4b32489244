// Package catalog holds the fixed list of books that may be requested.
package catalog

// DefaultTitles is the library's stock when no catalog is configured.
var DefaultTitles = []string{
	"Introduction to Algorithms",
	"Design Patterns",
	"The Pragmatic Programmer",
	"Clean Code",
	"Artificial Intelligence: A Modern Approach",
}

// Catalog is an ordered, read-only set of titles. Matching is exact.
type Catalog struct {
	titles []string
	index  map[string]struct{}
}

// New builds a catalog from titles, dropping empty and repeated entries while
// keeping the first-seen order.
func New(titles ...string) *Catalog {
	c := &Catalog{index: make(map[string]struct{}, len(titles))}
	for _, t := range titles {
		if t == "" {
			continue
		}
		if _, dup := c.index[t]; dup {
			continue
		}
		c.index[t] = struct{}{}
		c.titles = append(c.titles, t)
	}
	return c
}

// Default returns a catalog of DefaultTitles.
func Default() *Catalog {
	return New(DefaultTitles...)
}

// Titles returns a copy of the titles in catalog order.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.titles))
	copy(out, c.titles)
	return out
}

// Contains reports whether title is in the catalog. The comparison is exact.
func (c *Catalog) Contains(title string) bool {
	_, ok := c.index[title]
	return ok
}

// Len returns the number of titles.
func (c *Catalog) Len() int {
	return len(c.titles)
}
