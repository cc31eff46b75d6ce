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

package plot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ilhamster/flotviz/arena"
	"github.com/ilhamster/flotviz/color"
	configtree "github.com/ilhamster/flotviz/config_tree"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/points"
	testutil "github.com/ilhamster/flotviz/test_util"
)

func newPlot() *Plot {
	return New(arena.NewGuard(), 1, "", 800, 300)
}

func TestOptions(t *testing.T) {
	for _, test := range []struct {
		description string
		build       func(p *Plot)
		wantJSON    string
	}{{
		description: "empty",
		build:       func(p *Plot) {},
		wantJSON:    `{}`,
	}, {
		description: "second y axis before the first",
		build: func(p *Plot) {
			p.YAxis2().Min(0)
		},
		wantJSON: `{"yaxes":[{},{"min":0}]}`,
	}, {
		description: "second y axis after the first",
		build: func(p *Plot) {
			p.YAxis().Max(10)
			p.YAxis2().Max(20)
			p.YAxis2().Min(1)
		},
		wantJSON: `{"yaxes":[{"max":10},{"max":20,"min":1}]}`,
	}, {
		description: "right axis aligns ticks",
		build: func(p *Plot) {
			p.YAxis2().Position(Right)
		},
		wantJSON: `{"yaxes":[{},{"alignTicksWithAxis":1,"position":"right"}]}`,
	}, {
		description: "half-open bounds",
		build: func(p *Plot) {
			p.XAxis().Bounds(math.NaN(), 5)
		},
		wantJSON: `{"xaxes":[{"max":5}]}`,
	}, {
		description: "ticks",
		build: func(p *Plot) {
			p.XAxisN(2).TickValues(1, 10, 100)
			p.YAxis().TickValuesAndLabels(Tick{0, "zero"}, Tick{1, "one"}).TickDecimals(2)
		},
		wantJSON: `{
			"xaxes":[{},{"ticks":[1,10,100]}],
			"yaxes":[{"ticks":[[0,"zero"],[1,"one"]],"tickDecimals":2}]
		}`,
	}, {
		description: "time axis",
		build: func(p *Plot) {
			p.XAxis().Time().TimeFormat("%Y/%m/%d")
		},
		wantJSON: `{"xaxes":[{"mode":"time","timeformat":"%Y/%m/%d"}]}`,
	}, {
		description: "markings",
		build: func(p *Plot) {
			p.Markings().HorizontalLine(1).VerticalArea(2, 3).Color("red").Area(0, 1, 2, 3)
		},
		wantJSON: `{"grid":{"markings":[
			{"yaxis":{"from":1,"to":1}},
			{"xaxis":{"from":2,"to":3},"color":"red"},
			{"xaxis":{"from":0,"to":1},"yaxis":{"from":2,"to":3}}
		]}}`,
	}, {
		description: "repeated markings calls keep markings",
		build: func(p *Plot) {
			p.Markings().VerticalLine(1)
			p.Markings().VerticalLine(2).LineWidth(2)
		},
		wantJSON: `{"grid":{"markings":[
			{"xaxis":{"from":1,"to":1}},
			{"xaxis":{"from":2,"to":2},"lineWidth":2}
		]}}`,
	}, {
		description: "a reused marking node is copied",
		build: func(p *Plot) {
			mk := configtree.Object()
			mk.Set(configtree.Keys("xaxis", "from"), configtree.Number(1))
			p.Markings().AddMarking(mk).AddMarking(mk).Color("red")
		},
		wantJSON: `{"grid":{"markings":[
			{"xaxis":{"from":1}},
			{"xaxis":{"from":1},"color":"red"}
		]}}`,
	}, {
		description: "grid",
		build: func(p *Plot) {
			p.Grid().Color("#999").BackgroundGradient("#fff", "#eee").BorderWidth(1).Hoverable()
		},
		wantJSON: `{"grid":{
			"color":"#999",
			"backgroundColor":{"colors":["#fff","#eee"]},
			"borderWidth":1,
			"hoverable":true
		}}`,
	}, {
		description: "legend",
		build: func(p *Plot) {
			p.LegendPos(BottomRight)
			p.Legend().Columns(2).Margin(5, 10)
		},
		wantJSON: `{"legend":{"position":"se","noColumns":2,"margin":[5,10]}}`,
	}, {
		description: "hidden then shown legend",
		build: func(p *Plot) {
			p.LegendPos(None)
			p.LegendPos(TopLeft)
		},
		wantJSON: `{"legend":{"position":"nw"}}`,
	}, {
		description: "set option and palette",
		build: func(p *Plot) {
			p.SetOption("series", "shadowSize", configtree.Int(0))
			p.Palette(color.NewPalette("red", "blue"))
		},
		wantJSON: `{"series":{"shadowSize":0},"colors":["red","blue"]}`,
	}} {
		t.Run(test.description, func(t *testing.T) {
			p := newPlot()
			test.build(p)
			testutil.CompareJSON(t, p.Options(), test.wantJSON)
		})
	}
}

func TestAssignments(t *testing.T) {
	p := newPlot()
	p.YAxis().Transform("Math.log(v)").InverseTransform("function (v) { return Math.exp(v); }")
	p.YAxis2().LabelPost("€")
	p.YAxis().Transform("Math.log(v + 1)")
	var got []string
	for _, a := range p.Assignments() {
		got = append(got, a.Path.String()+" = "+a.Expr)
	}
	want := []string{
		"yaxes[0].transform = function (v) { return Math.log(v + 1); }",
		"yaxes[0].inverseTransform = function (v) { return Math.exp(v); }",
		`yaxes[1].tickFormatter = function (v, axis) { return v.toFixed(axis.tickDecimals) + "€"; }`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assignments() diff (-want +got):\n%s", diff)
	}
}

func TestHandleStability(t *testing.T) {
	p := newPlot()
	a := p.Lines("a", points.Of(points.P(0, 1)))
	b := p.Points("b", nil)
	a.Color("red")
	c := p.Bars("", nil)
	b.Radius(2)
	a.LineWidth(3)
	c.Width(0.5)
	series := p.Series()
	if len(series) != 3 || series[0] != a || series[1] != b || series[2] != c {
		t.Fatalf("Series() = %v, want [a b c]", series)
	}
	testutil.CompareJSON(t, a.Tree(), `{"label":"a","data":[[0,1]],"lines":{"show":true,"lineWidth":3},"color":"red"}`)
	testutil.CompareJSON(t, b.Tree(), `{"label":"b","data":[],"points":{"show":true,"radius":2}}`)
}

func TestFlags(t *testing.T) {
	p := newPlot()
	if p.UsesTime() || p.UsesSymbols() {
		t.Fatalf("new plot uses time or symbols")
	}
	p.Points("", nil).Symbol("cross")
	if !p.UsesSymbols() {
		t.Errorf("UsesSymbols() = false after Symbol()")
	}
	p.XAxis().Time()
	if !p.UsesTime() {
		t.Errorf("UsesTime() = false after Time()")
	}
	q := newPlot().ExtraSymbols()
	if !q.UsesSymbols() {
		t.Errorf("UsesSymbols() = false after ExtraSymbols()")
	}
}

func TestBlock(t *testing.T) {
	p := New(arena.NewGuard(), 3, "", 800, 300)
	p.Title("Rates").Size(640, 480).Text("a < b").HTML("<b>bold</b>")
	if got, want := p.Placeholder(), "plot-3"; got != want {
		t.Errorf("Placeholder() = %q, want %q", got, want)
	}
	if got, want := p.VarName(), "plot3"; got != want {
		t.Errorf("VarName() = %q, want %q", got, want)
	}
	if w, h := p.Dimensions(); w != 640 || h != 480 {
		t.Errorf("Dimensions() = %d, %d, want 640, 480", w, h)
	}
	wantParagraphs := []Paragraph{{Text: "a < b"}, {Text: "<b>bold</b>", Raw: true}}
	if diff := cmp.Diff(wantParagraphs, p.Paragraphs()); diff != "" {
		t.Errorf("Paragraphs() diff (-want +got):\n%s", diff)
	}
	if got := p.TitleText(); got != "Rates" {
		t.Errorf("TitleText() = %q, want Rates", got)
	}
}

func TestMisuse(t *testing.T) {
	t.Run("marking color with no marking", func(t *testing.T) {
		p := newPlot()
		testutil.ExpectPanic(t, errors.ErrCodeNoMarking, func() { p.Markings().Color("red") })
	})
	t.Run("marking line width with no marking", func(t *testing.T) {
		p := newPlot()
		testutil.ExpectPanic(t, errors.ErrCodeNoMarking, func() { p.Markings().LineWidth(1) })
	})
	t.Run("axis zero", func(t *testing.T) {
		p := newPlot()
		testutil.ExpectPanic(t, errors.ErrCodeInvalidInput, func() { p.YAxisN(0) })
	})
	t.Run("after seal", func(t *testing.T) {
		g := arena.NewGuard()
		p := New(g, 1, "", 800, 300)
		axis := p.YAxis()
		m := p.Markings().VerticalLine(1)
		g.Seal()
		for _, fn := range []func(){
			func() { p.Lines("x", nil) },
			func() { p.Title("x") },
			func() { axis.Min(1) },
			func() { m.Color("red") },
			func() { p.Legend() },
		} {
			testutil.ExpectPanic(t, errors.ErrCodeSealed, fn)
		}
	})
}
