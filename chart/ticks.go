// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"gonum.org/v1/plot"

	"github.com/seqbench/cacheplot/internal/units"
)

// maxByteLabels bounds the labeled ticks on the size axis.
const maxByteLabels = 10

// bytesTicks puts a tick at every power of two and labels them with
// binary prefixes, thinning the labels on wide ranges.
type bytesTicks struct{}

func (bytesTicks) Ticks(min, max float64) []plot.Tick {
	if !(min > 0) || max < min {
		return nil
	}
	lo := int(math.Ceil(math.Log2(min)))
	hi := int(math.Floor(math.Log2(max)))
	if lo > hi {
		return relabel(plot.LogTicks{}.Ticks(min, max), units.Binary, "B")
	}
	step := 1
	for (hi-lo)/step >= maxByteLabels {
		step++
	}

	var ticks []plot.Tick
	for e := lo; e <= hi; e++ {
		v := math.Ldexp(1, e)
		t := plot.Tick{Value: v}
		if e%step == 0 {
			t.Label = units.Scale(v, units.Binary) + "B"
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// secondsTicks is plot.LogTicks with SI-prefixed second labels.
type secondsTicks struct{}

func (secondsTicks) Ticks(min, max float64) []plot.Tick {
	return relabel(plot.LogTicks{}.Ticks(min, max), units.Decimal, "s")
}

// relabel replaces the labels of the major ticks with scaled values.
func relabel(ticks []plot.Tick, cls units.Class, unit string) []plot.Tick {
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = units.Scale(ticks[i].Value, cls) + unit
		}
	}
	return ticks
}
