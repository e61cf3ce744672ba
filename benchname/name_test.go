// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchname

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		name string
		want Name
	}{
		{
			"BM_insert_in_sorted_order<64, std::vector, Reserver>/4096/iterations:1",
			Name{"BM_insert_in_sorted_order", 64, "std::vector", "Reserver", 4096, []string{"4096", "iterations:1"}},
		},
		{
			"BM_insert_in_sorted_order<4, NullContainer, NullIniter>/4",
			Name{"BM_insert_in_sorted_order", 4, "NullContainer", "NullIniter", 4, []string{"4"}},
		},
		{
			"BM_sort_container<16, PointerVector>/1024/iterations:1",
			Name{"BM_sort_container", 16, "PointerVector", "", 1024, []string{"1024", "iterations:1"}},
		},
		{
			"BM<1024,std::list>/0",
			Name{"BM", 1024, "std::list", "", 0, []string{"0"}},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.name)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

// Building a name from its parts and parsing it must return exactly
// those parts.
func TestParseRoundTrip(t *testing.T) {
	for _, elem := range []int64{4, 16, 64, 256, 1024} {
		for _, container := range []string{"std::vector", "PointerVector", "std::list", "NullContainer", "MSVector"} {
			for _, init := range []string{"", "NullIniter", "Reserver"} {
				for _, size := range []int64{elem, elem * 2, 1 << 20} {
					name := fmt.Sprintf("BM_insert<%d, %s", elem, container)
					if init != "" {
						name += ", " + init
					}
					name += fmt.Sprintf(">/%d/iterations:1", size)

					n, err := Parse(name)
					require.NoError(t, err, name)
					assert.Equal(t, elem, n.ElementSize)
					assert.Equal(t, container, n.Container)
					assert.Equal(t, init, n.Initializer)
					assert.Equal(t, size, n.CollectionSize)
					assert.Equal(t, name, n.String())
					assert.Equal(t, float64(size)/float64(elem), n.CollectionItems())
				}
			}
		}
	}
}

func TestParseGrammar(t *testing.T) {
	const three = "BM<8, std::vector, Reserver>/64"
	const two = "BM<8, ReservingVector>/64"

	_, err := ParseWith(three, WithInitializer)
	assert.NoError(t, err)
	_, err = ParseWith(two, WithInitializer)
	assert.ErrorContains(t, err, "missing initializer")

	n, err := ParseWith(two, Folded)
	require.NoError(t, err)
	assert.True(t, n.Reserved())
	_, err = ParseWith(three, Folded)
	assert.ErrorContains(t, err, "unexpected initializer")

	n, err = ParseWith(three, Auto)
	require.NoError(t, err)
	assert.True(t, n.Reserved())
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name, want string
	}{
		{"BM_insert 8, std::vector>/64", "missing '<'"},
		{"BM<8, std::vector/64", "missing '>'"},
		{"BM<8, std::vector>", "missing '/'"},
		{"BM<8>/64", "missing ','"},
		{"BM<8, a, b, c>/64", "too many template arguments"},
		{"BM<x, std::vector>/64", `element size "x"`},
		{"BM<0, std::vector>/64", `element size "0"`},
		{"BM<8, >/64", "empty container"},
		{"BM<8, std::vector, >/64", "empty initializer"},
		{"BM<8, std::vector>/big", `collection size "big"`},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.name)
			require.Error(t, err)
			var serr *SyntaxError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, test.name, serr.Name)
			assert.Contains(t, serr.Msg, test.want)
		})
	}
}

func TestLookupGrammar(t *testing.T) {
	for _, g := range []Grammar{Auto, WithInitializer, Folded} {
		got, err := LookupGrammar(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
	_, err := LookupGrammar("nested")
	assert.Error(t, err)
}
