// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "testing"

func TestScale(t *testing.T) {
	for _, test := range []struct {
		val  float64
		cls  Class
		want string
	}{
		{0, Decimal, "0"},
		{1, Decimal, "1"},
		{-1, Decimal, "-1"},
		{0.001, Decimal, "1m"},
		{0.00125, Decimal, "1.25m"},
		{1.5e-7, Decimal, "150n"},
		{12.34e-6, Decimal, "12.3µ"},
		{999950, Decimal, "1M"},
		{2.5e9, Decimal, "2.5G"},
		{4e-13, Decimal, "0.4p"},

		{0, Binary, "0"},
		{4, Binary, "4"},
		{512, Binary, "512"},
		{1024, Binary, "1Ki"},
		{32768, Binary, "32Ki"},
		{262144, Binary, "256Ki"},
		{8388608, Binary, "8Mi"},
		{1536, Binary, "1.5Ki"},
		{-2048, Binary, "-2Ki"},
		{0.5, Binary, "0.5"},
	} {
		if got := Scale(test.val, test.cls); got != test.want {
			t.Errorf("Scale(%v, %v) = %q, want %q", test.val, test.cls, got, test.want)
		}
	}
}

func TestClassString(t *testing.T) {
	if got := Binary.String(); got != "Binary" {
		t.Errorf("Binary.String() = %q", got)
	}
	if got := Class(7).String(); got != "Class(7)" {
		t.Errorf("Class(7).String() = %q", got)
	}
}
