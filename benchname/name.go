// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchname decodes the names of templated container
// benchmarks.
//
// A name has the form
//
//	Prefix<ELEMENT_SIZE, CONTAINER[, INITIALIZER]>/COLLECTION_SIZE[/...]
//
// for example
//
//	BM_insert_in_sorted_order<64, std::vector, Reserver>/4096/iterations:1
//
// ELEMENT_SIZE and COLLECTION_SIZE are in bytes. Harnesses differ in
// whether they emit the INITIALIZER argument; see Grammar.
package benchname

import (
	"fmt"
	"strconv"
	"strings"
)

// A Grammar selects which template argument lists are accepted.
type Grammar int

const (
	// Auto accepts two or three template arguments. The third, if
	// present, is the initializer.
	Auto Grammar = iota
	// WithInitializer requires ELEMENT_SIZE, CONTAINER and INITIALIZER.
	WithInitializer
	// Folded requires ELEMENT_SIZE and CONTAINER only. Harnesses using
	// this form fold the initializer into the container name, as in
	// "ReservingVector".
	Folded
)

var grammarNames = []string{
	Auto:            "auto",
	WithInitializer: "initializer",
	Folded:          "folded",
}

func (g Grammar) String() string {
	if g >= 0 && int(g) < len(grammarNames) {
		return grammarNames[g]
	}
	return fmt.Sprintf("Grammar(%d)", int(g))
}

// LookupGrammar returns the Grammar named by s ("auto", "initializer"
// or "folded").
func LookupGrammar(s string) (Grammar, error) {
	for g, name := range grammarNames {
		if s == name {
			return Grammar(g), nil
		}
	}
	return 0, fmt.Errorf("unknown name grammar %q", s)
}

// Reserver is the initializer that reserves capacity up front.
const Reserver = "Reserver"

// reservingPrefix marks a Folded container name with reserved capacity.
const reservingPrefix = "Reserving"

// A Name is a decoded benchmark name.
type Name struct {
	Prefix         string // text before '<'
	ElementSize    int64
	Container      string
	Initializer    string // "" if the name has no initializer argument
	CollectionSize int64
	// Args are the '/'-separated parts after the template arguments.
	// Args[0] is the collection size as written.
	Args []string
}

// CollectionItems is the number of elements that fit in the
// collection. It is fractional when the element size does not divide
// the collection size.
func (n Name) CollectionItems() float64 {
	return float64(n.CollectionSize) / float64(n.ElementSize)
}

// Reserved reports whether the benchmark reserved container capacity,
// either through the Reserver initializer or a "Reserving" container.
func (n Name) Reserved() bool {
	return n.Initializer == Reserver || strings.HasPrefix(n.Container, reservingPrefix)
}

// String reconstructs the benchmark name.
func (n Name) String() string {
	var buf strings.Builder
	buf.WriteString(n.Prefix)
	buf.WriteByte('<')
	buf.WriteString(strconv.FormatInt(n.ElementSize, 10))
	buf.WriteString(", ")
	buf.WriteString(n.Container)
	if n.Initializer != "" {
		buf.WriteString(", ")
		buf.WriteString(n.Initializer)
	}
	buf.WriteString(">/")
	buf.WriteString(strings.Join(n.Args, "/"))
	return buf.String()
}

// A SyntaxError reports a benchmark name that does not match the
// grammar.
type SyntaxError struct {
	Name string // the full name
	Off  int    // byte offset of the error in Name
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("benchmark name %q: at offset %d: %s", e.Name, e.Off, e.Msg)
}

// Parse decodes s using the Auto grammar.
func Parse(s string) (Name, error) {
	return ParseWith(s, Auto)
}

// ParseWith decodes s using grammar g.
func ParseWith(s string, g Grammar) (Name, error) {
	errorf := func(off int, format string, args ...interface{}) (Name, error) {
		return Name{}, &SyntaxError{s, off, fmt.Sprintf(format, args...)}
	}

	lt := strings.IndexByte(s, '<')
	if lt < 0 {
		return errorf(0, "missing '<'")
	}
	gt := strings.IndexByte(s[lt:], '>')
	if gt < 0 {
		return errorf(len(s), "missing '>'")
	}
	gt += lt
	slash := strings.IndexByte(s[gt:], '/')
	if slash < 0 {
		return errorf(len(s), "missing '/' before collection size")
	}
	slash += gt

	// Split the template arguments, tracking offsets for errors.
	var args []string
	var offs []int
	start := lt + 1
	for i := start; i <= gt; i++ {
		if i == gt || s[i] == ',' {
			args = append(args, strings.TrimSpace(s[start:i]))
			offs = append(offs, start)
			start = i + 1
		}
	}

	switch {
	case len(args) < 2:
		return errorf(gt, "missing ',' between element size and container")
	case len(args) > 3:
		return errorf(offs[3], "too many template arguments")
	case g == WithInitializer && len(args) != 3:
		return errorf(gt, "missing initializer argument")
	case g == Folded && len(args) != 2:
		return errorf(offs[2], "unexpected initializer argument")
	}

	var n Name
	n.Prefix = s[:lt]

	elem, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || elem <= 0 {
		return errorf(offs[0], "element size %q is not a positive integer", args[0])
	}
	n.ElementSize = elem

	if args[1] == "" {
		return errorf(offs[1], "empty container")
	}
	n.Container = args[1]
	if len(args) == 3 {
		if args[2] == "" {
			return errorf(offs[2], "empty initializer")
		}
		n.Initializer = args[2]
	}

	n.Args = strings.Split(s[slash+1:], "/")
	size, err := strconv.ParseInt(n.Args[0], 10, 64)
	if err != nil || size < 0 {
		return errorf(slash+1, "collection size %q is not a non-negative integer", n.Args[0])
	}
	n.CollectionSize = size

	return n, nil
}
