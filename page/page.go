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

// Package page assembles plots into a static HTML page that draws them with
// jQuery and flot.
//
// A Page hands out Plot handles, which in turn hand out Series handles; all
// of them stay valid and mutable, in any order, until the page is sealed:
//
//	pg := page.New("Demo")
//	p := pg.Plot("")
//	p.Lines("lines", points.Of(points.P(0, 1), points.P(1, 4.5)))
//	p.Points("points", points.Of(points.P(0.5, 1.2), points.P(0.8, 4.0)))
//	if err := pg.RenderFile("demo.html"); err != nil {
//		...
//	}
//
// Sealing (via Seal, Render, or RenderFile) happens exactly once.  It
// freezes every plot and series into a Document, which may be written any
// number of times; any later use of the page or its handles fails with an
// ErrCodeSealed error.
package page

import (
	"bytes"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/ilhamster/flotviz/arena"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/plot"
)

// Default plot dimensions, in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 300
)

// Page is a collection of plots under a common title.
type Page struct {
	guard         *arena.Guard
	plots         *arena.Arena[plot.Plot]
	title         string
	width, height int
	sources       Sources
	logger        *log.Logger
}

// Option configures a Page.
type Option func(p *Page)

// WithAssets loads the page's scripts from the provided sources instead of
// SourcesFromEnv().
func WithAssets(sources Sources) Option {
	return func(p *Page) {
		p.sources = sources
	}
}

// WithLogger logs the page's lifecycle to the provided logger.
func WithLogger(logger *log.Logger) Option {
	return func(p *Page) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDefaultSize sets the size, in pixels, of plots created on the page.
func WithDefaultSize(width, height int) Option {
	return func(p *Page) {
		p.width, p.height = width, height
	}
}

// New returns a new, empty Page with the specified title.  An empty title
// shows no heading.
func New(title string, opts ...Option) *Page {
	guard := arena.NewGuard()
	ret := &Page{
		guard:   guard,
		plots:   arena.New[plot.Plot](guard),
		title:   title,
		width:   DefaultWidth,
		height:  DefaultHeight,
		sources: SourcesFromEnv(),
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Title returns the receiver's title.
func (p *Page) Title() string {
	return p.title
}

// Len returns the number of plots on the receiver.
func (p *Page) Len() int {
	return p.plots.Len()
}

// Plot adds a new plot with the specified title, which may be empty, to the
// receiver.  It panics with an ErrCodeSealed error once the receiver is
// sealed.
func (p *Page) Plot(title string) *plot.Plot {
	p.guard.Check("Page.Plot")
	return p.plots.Alloc(plot.New(p.guard, p.plots.Len()+1, title, p.width, p.height))
}

// Seal freezes the receiver and all of its plots and series into a
// Document.  Every handle obtained from the receiver is dead afterwards.
// Sealing an already-sealed page returns an ErrCodeSealed error.
func (p *Page) Seal() (*Document, error) {
	plots, err := p.plots.Drain()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSealed, err, "page %q was already sealed", p.title)
	}
	doc, err := newDocument(p.title, p.sources, plots)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("sealed page", "title", p.title, "plots", len(plots), "time", doc.time, "symbols", doc.symbols)
	return doc, nil
}

// Render seals the receiver and writes its document to w.
func (p *Page) Render(w io.Writer) error {
	doc, err := p.Seal()
	if err != nil {
		return err
	}
	n, err := doc.WriteTo(w)
	if err != nil {
		return err
	}
	p.logger.Debug("rendered page", "title", p.title, "bytes", n)
	return nil
}

// RenderFile seals the receiver and writes its document to the file at
// path, replacing any existing file.
func (p *Page) RenderFile(path string) error {
	doc, err := p.Seal()
	if err != nil {
		return err
	}
	if err := doc.WriteFile(path); err != nil {
		return err
	}
	p.logger.Debug("rendered page", "title", p.title, "path", path)
	return nil
}

// Bytes seals the receiver and returns its document's bytes.
func (p *Page) Bytes() ([]byte, error) {
	doc, err := p.Seal()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the receiver to the file at path, replacing any existing
// file.
func (d *Document) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "cannot create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "cannot close %s", path)
		}
	}()
	if _, err := d.WriteTo(f); err != nil {
		return err
	}
	return nil
}
