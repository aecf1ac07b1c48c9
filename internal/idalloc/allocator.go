// Package idalloc hands out node identifiers that stay unique across
// independent generation runs over one persisted document.
//
// An id is a letters-only prefix followed by a decimal counter ("btn9001").
// Because prefixes hold no digits, every id splits back into exactly one
// (prefix, number) pair, so ids from different prefixes can never collide.
// Each prefix counts from the larger of the namespace base and one past the
// highest number already present in the document.
package idalloc

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/conneroisu/pencraft/internal/node"
)

// Allocator issues fresh ids. It is not safe for concurrent use.
type Allocator struct {
	base   int
	next   map[string]int
	issued map[string]int
}

// New returns an allocator whose counters start no lower than base.
func New(base int) *Allocator {
	if base < 0 {
		base = 0
	}
	return &Allocator{
		base:   base,
		next:   make(map[string]int),
		issued: make(map[string]int),
	}
}

// ValidatePrefix checks that prefix is non-empty ASCII letters.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("id prefix is empty")
	}
	for _, r := range prefix {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return fmt.Errorf("id prefix %q must contain only letters", prefix)
		}
	}
	return nil
}

// Split decomposes an id produced by an Allocator. ok is false for ids of
// any other form.
func Split(id string) (prefix string, n int, ok bool) {
	i := 0
	for i < len(id) && (id[i] >= 'a' && id[i] <= 'z' || id[i] >= 'A' && id[i] <= 'Z') {
		i++
	}
	if i == 0 || i == len(id) {
		return "", 0, false
	}
	digits := id[i:]
	if len(digits) > 1 && digits[0] == '0' {
		return "", 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return "", 0, false
	}
	return id[:i], n, true
}

// Observe records existing ids so later allocations skip past them. Ids
// not of the allocator's form are ignored; they cannot equal one it issues.
func (a *Allocator) Observe(ids ...string) {
	for _, id := range ids {
		prefix, n, ok := Split(id)
		if !ok {
			continue
		}
		if n+1 > a.next[prefix] {
			a.next[prefix] = n + 1
		}
	}
}

// Seed observes every id in the document, including ids inside nodes of
// unknown kinds.
func (a *Allocator) Seed(doc *node.Document) {
	a.Observe(node.DocumentIDs(doc)...)
}

// Next returns a fresh id for prefix. It panics if prefix is invalid;
// prefixes are fixed by the section registry, which validates them.
func (a *Allocator) Next(prefix string) string {
	if err := ValidatePrefix(prefix); err != nil {
		panic("idalloc: " + err.Error())
	}
	n := a.next[prefix]
	if n < a.base {
		n = a.base
	}
	a.next[prefix] = n + 1
	a.issued[prefix]++
	return prefix + strconv.Itoa(n)
}

// Peek returns the number the next id for prefix would carry.
func (a *Allocator) Peek(prefix string) int {
	if n := a.next[prefix]; n > a.base {
		return n
	}
	return a.base
}

// Allocated returns how many ids were issued per prefix during this run.
func (a *Allocator) Allocated() map[string]int {
	out := make(map[string]int, len(a.issued))
	for k, v := range a.issued {
		out[k] = v
	}
	return out
}

// Total returns the number of ids issued during this run.
func (a *Allocator) Total() int {
	total := 0
	for _, v := range a.issued {
		total += v
	}
	return total
}

// Prefixes returns the prefixes used this run, sorted.
func (a *Allocator) Prefixes() []string {
	prefixes := make([]string, 0, len(a.issued))
	for p := range a.issued {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	return prefixes
}
