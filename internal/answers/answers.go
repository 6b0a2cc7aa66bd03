package answers

import (
	"fmt"
	"strings"
)

// Value is the state of a single answer slot.
type Value int8

const (
	Unset Value = iota // No response yet
	True               // Respondent endorses the statement
	False              // Respondent does not endorse the statement
)

// Of converts a boolean response to a Value.
func Of(b bool) Value {
	if b {
		return True
	}
	return False
}

// String returns the single-character form used by Parse.
func (v Value) String() string {
	switch v {
	case True:
		return "T"
	case False:
		return "F"
	default:
		return "-"
	}
}

// Set is an ordered sequence of answer slots, one per question.
type Set []Value

// New returns an all-unset Set of length n.
func New(n int) Set {
	return make(Set, n)
}

// IsSet reports whether slot i holds a response. Out-of-range slots are unset.
func (s Set) IsSet(i int) bool {
	return i >= 0 && i < len(s) && s[i] != Unset
}

// AllSet reports whether every slot holds a response.
func (s Set) AllSet() bool {
	for _, v := range s {
		if v == Unset {
			return false
		}
	}
	return true
}

// Count returns the number of slots equal to v.
func (s Set) Count(v Value) int {
	n := 0
	for _, x := range s {
		if x == v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	copy(out, s)
	return out
}

func (s Set) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, v := range s {
		b.WriteString(v.String())
	}
	return b.String()
}

// Parse reads a compact answer string such as "TFT" or "y,n,-".
// Accepted symbols: T/Y/1 (true), F/N/0 (false), -/?/_ (unset).
// Commas and whitespace are ignored.
func Parse(s string) (Set, error) {
	var out Set
	for i, r := range s {
		switch r {
		case 'T', 't', 'Y', 'y', '1':
			out = append(out, True)
		case 'F', 'f', 'N', 'n', '0':
			out = append(out, False)
		case '-', '?', '_':
			out = append(out, Unset)
		case ',', ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("invalid answer symbol %q at offset %d", r, i)
		}
	}
	return out, nil
}
