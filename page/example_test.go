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

package page_test

import (
	"math"
	"os"

	"github.com/ilhamster/flotviz/page"
	"github.com/ilhamster/flotviz/plot"
	"github.com/ilhamster/flotviz/points"
)

func Example() {
	pg := page.New("")
	p := pg.Plot("")
	p.Lines("lines", points.Of(points.P(0, 1), points.P(1, 4.5)))
	p.Points("points", points.Of(points.P(0.5, 1.2), points.P(0.8, 4.0))).Symbol("circle")
	if err := pg.Render(os.Stdout); err != nil {
		panic(err)
	}
}

// A log-scaled y axis, using a transform evaluated by flot.
func Example_logAxis() {
	pg := page.New("")
	p := pg.Plot("")
	p.YAxis().Transform("Math.log(v + 0.0001)").Min(0).TickValues(0.1, 1, 10, 100, 1000)
	p.Lines("", points.MapSeq(points.Range(0.1, 5, 0.05), math.Exp))
	if err := pg.RenderFile("log-axis.html"); err != nil {
		panic(err)
	}
}

// Two series on separate y axes over a time x axis.
func Example_twoAxes() {
	days := []float64{1.7e12, 1.7001e12, 1.7002e12}
	pg := page.New("")
	p := pg.Plot("Oil price vs Euro exchange rate").LegendPos(plot.BottomRight).Size(900, 400)
	p.XAxis().Time()
	p.YAxis().Min(0)
	p.YAxis2().Position(plot.Right).LabelPost("€")
	p.Lines("dollar/euro exchange", points.Zip(days, []float64{0.91, 0.92, 0.9})).YAxis(2)
	p.Lines("oil price", points.Zip(days, []float64{78, 80, 77}))
	if err := pg.RenderFile("exchange.html"); err != nil {
		panic(err)
	}
}

// A histogram drawn as bars.
func Example_bars() {
	pg := page.New("Histogram")
	pg.Plot("Squares of integers up to 9").
		LegendPos(plot.TopLeft).
		Bars("squares", points.MapSeq(points.Count(0, 10), func(x float64) float64 { return x * x })).
		Width(0.75)
	if err := pg.RenderFile("squares.html"); err != nil {
		panic(err)
	}
}
