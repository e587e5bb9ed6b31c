// Package vm parses DICOM Value Multiplicity expressions such as "1", "1-8",
// "1-n" and "2-2n" into a normalized range and step.
package vm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// Infinite is the Maximum of an unbounded multiplicity
const Infinite = math.MaxInt32

// VM is a normalized value multiplicity
type VM struct {
	Minimum      int
	Maximum      int
	Multiplicity int
}

// Common multiplicities
var (
	One     = VM{Minimum: 1, Maximum: 1, Multiplicity: 1}
	OneToN  = VM{Minimum: 1, Maximum: Infinite, Multiplicity: 1}
	Unknown = OneToN
)

// GrammarError is returned when VM text can not be parsed
type GrammarError struct {
	Text string
	Err  error
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("invalid value multiplicity %q: %v", e.Text, e.Err)
}

func (e *GrammarError) Unwrap() error {
	return e.Err
}

// IsUnbounded reports whether the maximum is Infinite
func (v VM) IsUnbounded() bool {
	return v.Maximum == Infinite
}

// Allows reports whether count values satisfy the multiplicity
func (v VM) Allows(count int) bool {
	if count < v.Minimum || count > v.Maximum {
		return false
	}
	if v.Multiplicity > 1 {
		return count%v.Multiplicity == 0
	}
	return true
}

// String renders the multiplicity in descriptor form
func (v VM) String() string {
	switch {
	case v.Minimum == v.Maximum:
		return strconv.Itoa(v.Minimum)
	case v.IsUnbounded() && v.Multiplicity > 1:
		return fmt.Sprintf("%d-%dn", v.Minimum, v.Multiplicity)
	case v.IsUnbounded():
		return fmt.Sprintf("%d-n", v.Minimum)
	}
	return fmt.Sprintf("%d-%d", v.Minimum, v.Maximum)
}

// Cache parses VM text and remembers the result by the literal text. It is
// safe for concurrent use; racing first parses of the same literal agree.
type Cache struct {
	m sync.Map // string -> VM
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{}
}

// Default is the process-wide cache used by Parse
var Default = NewCache()

// Parse parses text with the Default cache
func Parse(text string) (VM, error) {
	return Default.Parse(text)
}

// MustParse is like Parse but panics on error
func MustParse(text string) VM {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse returns the normalized VM for text, parsing it at most once per
// distinct literal.
func (c *Cache) Parse(text string) (VM, error) {
	if v, ok := c.m.Load(text); ok {
		return v.(VM), nil
	}
	v, err := parse(text)
	if err != nil {
		return VM{}, err
	}
	actual, _ := c.m.LoadOrStore(text, v)
	return actual.(VM), nil
}

// Len returns the number of cached literals
func (c *Cache) Len() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func parse(text string) (VM, error) {
	parts := split(text)
	switch len(parts) {
	case 0:
		return VM{}, &GrammarError{Text: text, Err: fmt.Errorf("empty expression")}
	case 1:
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return VM{}, &GrammarError{Text: text, Err: err}
		}
		return VM{Minimum: n, Maximum: n, Multiplicity: n}, nil
	}

	minimum, err := strconv.Atoi(parts[0])
	if err != nil {
		return VM{}, &GrammarError{Text: text, Err: err}
	}
	v := VM{Minimum: minimum, Multiplicity: 1}
	upper := parts[1]
	if i := strings.IndexAny(upper, "nN"); i >= 0 {
		v.Maximum = Infinite
		if step := upper[:i]; step != "" {
			if v.Multiplicity, err = strconv.Atoi(step); err != nil {
				return VM{}, &GrammarError{Text: text, Err: err}
			}
		}
		return v, nil
	}
	if v.Maximum, err = strconv.Atoi(upper); err != nil {
		return VM{}, &GrammarError{Text: text, Err: err}
	}
	return v, nil
}

// split breaks text on '-', spaces and the word "or"
func split(text string) []string {
	text = strings.ReplaceAll(text, "or", " ")
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t'
	})
}
