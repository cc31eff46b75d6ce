/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package points adapts heterogeneous numeric sequences into the (x, y) pairs
// that make up a series' data.
//
// Every adapter returns a lazy iter.Seq[Pair]; nothing is materialized until
// a series consumes the sequence:
//
//	xs := slices.Collect(points.Range(0, 8, 0.2))
//	plot.Lines("sin", points.Map(xs, math.Sin))
//	plot.Points("data", points.Zip([]int{1, 2, 5}, []float64{0.5, 1, 0.5}))
//	plot.Bars("squares", points.MapSeq(points.Count(0, 10), func(x float64) float64 { return x * x }))
package points

import (
	"iter"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is implemented by the numeric types accepted by the adapters.
type Number interface {
	constraints.Integer | constraints.Float
}

// Pair is a single (x, y) data point.
type Pair struct {
	X, Y float64
}

// P returns the Pair (x, y).
func P[X, Y Number](x X, y Y) Pair {
	return Pair{X: float64(x), Y: float64(y)}
}

// Of returns a sequence over the provided pairs.
func Of(pairs ...Pair) iter.Seq[Pair] {
	return slices.Values(pairs)
}

// Tuples returns a sequence over two-element arrays, taken as (x, y).
func Tuples[T Number](tuples [][2]T) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for _, t := range tuples {
			if !yield(P(t[0], t[1])) {
				return
			}
		}
	}
}

// Range returns the half-open sequence start, start+step, ... while the value
// is below end.  A non-positive step, or any bound that is NaN or infinite,
// yields nothing.
func Range(start, end, step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if step <= 0 || !finite(start) || !finite(end) || !finite(step) {
			return
		}
		for i := 0; ; i++ {
			v := start + float64(i)*step
			if v >= end || !yield(v) {
				return
			}
		}
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Count returns the integers in [start, end).
func Count(start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Zip pairs xs and ys element-wise, stopping at the end of the shorter one.
func Zip[X, Y Number](xs []X, ys []Y) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for idx := 0; idx < len(xs) && idx < len(ys); idx++ {
			if !yield(P(xs[idx], ys[idx])) {
				return
			}
		}
	}
}

// Map pairs each x in xs with f(x).
func Map[T Number](xs []T, f func(float64) float64) iter.Seq[Pair] {
	return MapSeq(slices.Values(xs), f)
}

// MapSeq pairs each x yielded by xs with f(x).
func MapSeq[T Number](xs iter.Seq[T], f func(float64) float64) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for x := range xs {
			fx := float64(x)
			if !yield(Pair{X: fx, Y: f(fx)}) {
				return
			}
		}
	}
}

// Scale returns seq with every x multiplied by xScale and every y by yScale,
// e.g. to turn Unix seconds into the milliseconds flot expects on time axes.
func Scale(seq iter.Seq[Pair], xScale, yScale float64) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for p := range seq {
			if !yield(Pair{X: p.X * xScale, Y: p.Y * yScale}) {
				return
			}
		}
	}
}
