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

package chartfile

import (
	"github.com/ilhamster/flotviz/color"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/page"
	"github.com/ilhamster/flotviz/plot"
	"github.com/ilhamster/flotviz/series"
)

var corners = map[string]plot.Corner{
	"none": plot.None,
	"ne":   plot.TopRight,
	"nw":   plot.TopLeft,
	"se":   plot.BottomRight,
	"sw":   plot.BottomLeft,
}

var sides = map[string]plot.Side{
	"right":  plot.Right,
	"left":   plot.Left,
	"bottom": plot.Bottom,
	"top":    plot.Top,
}

var kinds = map[string]series.Kind{
	"lines":  series.Lines,
	"points": series.Points,
	"bars":   series.Bars,
}

var aligns = map[string]series.BarAlign{
	"left":   series.AlignLeft,
	"center": series.AlignCenter,
	"right":  series.AlignRight,
}

func (pd *Plot) build(pg *page.Page, dir string) error {
	raw, err := rawOptions(pd.Options)
	if err != nil {
		return err
	}
	p := pg.Plot(pd.Title)
	if err := p.Update(raw...); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot apply options")
	}
	if pd.Width > 0 && pd.Height > 0 {
		p.Size(pd.Width, pd.Height)
	}
	for _, text := range pd.Text {
		p.Text(text)
	}
	for _, markup := range pd.HTML {
		p.HTML(markup)
	}
	if pd.Symbols {
		p.ExtraSymbols()
	}
	if len(pd.Palette) > 0 {
		p.Palette(color.NewPalette(pd.Palette...))
	}
	if pd.Legend != "" {
		corner, ok := corners[pd.Legend]
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown legend position %q", pd.Legend)
		}
		p.LegendPos(corner)
	}
	if pd.Grid != nil {
		if err := pd.Grid.build(p.Grid()); err != nil {
			return err
		}
	}
	for idx := range pd.XAxes {
		if err := pd.XAxes[idx].build(p.XAxisN(idx + 1)); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "x axis %d", idx+1)
		}
	}
	for idx := range pd.YAxes {
		if err := pd.YAxes[idx].build(p.YAxisN(idx + 1)); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "y axis %d", idx+1)
		}
	}
	if len(pd.Marks) > 0 {
		m := p.Markings()
		for idx := range pd.Marks {
			if err := pd.Marks[idx].build(m); err != nil {
				return errors.Wrap(errors.GetCode(err), err, "marking %d", idx+1)
			}
		}
	}
	for idx := range pd.Series {
		if err := pd.Series[idx].build(p, dir); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "series %d", idx+1)
		}
	}
	return nil
}

func (gd *Grid) build(g *plot.Grid) error {
	if gd.Color != "" {
		g.Color(gd.Color)
	}
	switch len(gd.Background) {
	case 0:
	case 1:
		g.BackgroundColor(gd.Background[0])
	case 2:
		g.BackgroundGradient(gd.Background[0], gd.Background[1])
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "grid background takes one color or two, got %d", len(gd.Background))
	}
	if gd.BorderWidth != nil {
		g.BorderWidth(*gd.BorderWidth)
	}
	if gd.BorderColor != "" {
		g.BorderColor(gd.BorderColor)
	}
	if gd.MarkingsColor != "" {
		g.MarkingsColor(gd.MarkingsColor)
	}
	if gd.Hoverable {
		g.Hoverable()
	}
	if gd.Clickable {
		g.Clickable()
	}
	if gd.Hide {
		g.Show(false)
	}
	return nil
}

func (ad *Axis) build(a *plot.Axis) error {
	if ad.Min != nil {
		a.Min(*ad.Min)
	}
	if ad.Max != nil {
		a.Max(*ad.Max)
	}
	if ad.Position != "" {
		side, ok := sides[ad.Position]
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown axis position %q", ad.Position)
		}
		a.Position(side)
	}
	if ad.Time {
		a.Time()
	}
	if ad.TimeFormat != "" {
		a.TimeFormat(ad.TimeFormat)
	}
	if ad.TickSize != nil {
		a.TickSize(*ad.TickSize)
	}
	if ad.TickDecimals != nil {
		a.TickDecimals(*ad.TickDecimals)
	}
	switch {
	case len(ad.TickLabels) > 0:
		if len(ad.TickLabels) != len(ad.Ticks) {
			return errors.New(errors.ErrCodeInvalidConfig, "%d tick labels for %d ticks", len(ad.TickLabels), len(ad.Ticks))
		}
		ticks := make([]plot.Tick, len(ad.Ticks))
		for idx, v := range ad.Ticks {
			ticks[idx] = plot.Tick{Value: v, Label: ad.TickLabels[idx]}
		}
		a.TickValuesAndLabels(ticks...)
	case len(ad.Ticks) > 0:
		a.TickValues(ad.Ticks...)
	}
	if ad.Transform != "" {
		a.Transform(ad.Transform)
	}
	if ad.InverseTransform != "" {
		a.InverseTransform(ad.InverseTransform)
	}
	switch {
	case ad.TickFormatter != "" && (ad.Prefix != "" || ad.Suffix != ""):
		return errors.New(errors.ErrCodeInvalidConfig, "tick_formatter cannot be combined with prefix or suffix")
	case ad.TickFormatter != "":
		a.TickFormatter(ad.TickFormatter)
	case ad.Prefix != "" || ad.Suffix != "":
		a.Affixes(ad.Prefix, ad.Suffix)
	}
	if ad.Color != "" {
		a.Color(ad.Color)
	}
	if ad.Hide {
		a.Show(false)
	}
	return nil
}

func (md *Marking) build(m *plot.Markings) error {
	switch md.Kind {
	case "hline":
		m.HorizontalLine(md.At)
	case "vline":
		m.VerticalLine(md.At)
	case "harea":
		m.HorizontalArea(md.From, md.To)
	case "varea":
		m.VerticalArea(md.From, md.To)
	case "area":
		if len(md.X) != 2 || len(md.Y) != 2 {
			return errors.New(errors.ErrCodeInvalidConfig, "area markings need x = [from, to] and y = [from, to]")
		}
		m.Area(md.X[0], md.X[1], md.Y[0], md.Y[1])
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown marking kind %q", md.Kind)
	}
	if md.Color != "" {
		m.Color(md.Color)
	}
	if md.LineWidth != nil {
		m.LineWidth(*md.LineWidth)
	}
	return nil
}

func (sd *Series) build(p *plot.Plot, dir string) error {
	kindName := sd.Kind
	if kindName == "" {
		kindName = "lines"
	}
	kind, ok := kinds[kindName]
	if !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown series kind %q", sd.Kind)
	}
	data, err := sd.Source.load(dir)
	if err != nil {
		return err
	}
	var s *series.Series
	switch kind {
	case series.Lines:
		s = p.Lines(sd.Label, data)
	case series.Points:
		s = p.Points(sd.Label, data)
	case series.Bars:
		s = p.Bars(sd.Label, data)
	}
	if sd.Color != "" {
		s.Color(sd.Color)
	}
	if sd.XAxis > 0 {
		s.XAxis(sd.XAxis)
	}
	if sd.YAxis > 0 {
		s.YAxis(sd.YAxis)
	}
	if sd.Fill != nil {
		s.Fill(*sd.Fill)
	}
	if sd.FillColor != "" {
		s.FillColor(sd.FillColor)
	}
	if sd.LineWidth != nil {
		s.LineWidth(*sd.LineWidth)
	}
	if sd.ShadowSize != nil {
		s.ShadowSize(*sd.ShadowSize)
	}
	if sd.Radius != nil {
		s.Radius(*sd.Radius)
	}
	if sd.Symbol != "" {
		s.Symbol(sd.Symbol)
	}
	if sd.Steps {
		s.Steps()
	}
	if sd.BarWidth != nil {
		s.Width(*sd.BarWidth)
	}
	if sd.Align != "" {
		align, ok := aligns[sd.Align]
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown bar alignment %q", sd.Align)
		}
		s.Align(align)
	}
	if sd.Horizontal {
		s.Horizontal()
	}
	return nil
}
