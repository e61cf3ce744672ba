// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units formats measurements with SI or binary prefixes for
// axis labels and tables.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal scales by powers of 1000 using SI prefixes ("k", "m", "µ").
	Decimal Class = iota
	// Binary scales by powers of 1024 using IEC prefixes ("Ki", "Mi").
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// A Scaler represents a scaling factor for a number and its prefix.
type Scaler struct {
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 Ki => 1024)
	Prefix string  // Unit prefix ("k", "Mi", "µ", etc)
}

type factor struct {
	factor float64
	prefix string
}

// Largest factor first. Binary units bottom out at the unprefixed
// unit: "0.5 B" reads better than a fractional IEC prefix.
var (
	siFactors  = mkFactors(1000, 4, []string{"T", "G", "M", "k", "", "m", "µ", "n", "p"})
	iecFactors = mkFactors(1024, 4, []string{"Ti", "Gi", "Mi", "Ki", ""})
)

func mkFactors(base float64, top int, prefixes []string) []factor {
	factors := make([]factor, len(prefixes))
	for i, p := range prefixes {
		factors[i] = factor{math.Pow(base, float64(top-i)), p}
	}
	return factors
}

// ScalerFor returns the Scaler that renders val with the largest
// prefix keeping the scaled magnitude at or above 1.
func ScalerFor(val float64, cls Class) Scaler {
	var factors []factor
	switch cls {
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	case Decimal:
		factors = siFactors
	case Binary:
		factors = iecFactors
	}

	v := math.Abs(val)
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return Scaler{1, ""}
	}
	for i, f := range factors {
		if v < f.factor {
			continue
		}
		// Rounding to three significant digits may carry into the
		// next prefix, e.g. 999.95k should read 1M.
		if i > 0 && v/f.factor >= 999.5 && cls == Decimal {
			up := factors[i-1]
			return Scaler{up.factor, up.prefix}
		}
		return Scaler{f.factor, f.prefix}
	}
	last := factors[len(factors)-1]
	return Scaler{last.factor, last.prefix}
}

// Format formats val with at most three significant digits and
// appends the unit prefix. Trailing zeros are dropped, so 32768 in
// Binary is "32Ki" and 0.00125 in Decimal is "1.25m".
func (s Scaler) Format(val float64) string {
	x := val / s.Factor
	prec := 2
	switch abs := math.Abs(x); {
	case abs >= 100:
		prec = 0
	case abs >= 10:
		prec = 1
	}
	return trimZeros(strconv.FormatFloat(x, 'f', prec, 64)) + s.Prefix
}

func trimZeros(s string) string {
	if strings.IndexByte(s, '.') < 0 {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}

// Scale formats val using the prefix chosen by ScalerFor.
func Scale(val float64, cls Class) string {
	return ScalerFor(val, cls).Format(val)
}
