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

package page

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/plot"
	"github.com/ilhamster/flotviz/style"
)

const defaultTitle = "Flot Plots"

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.HeadTitle}}</title>
{{range .Scripts}}<script src="{{.}}"></script>
{{end}}</head>
<body>
{{if .Title}}<h1>{{.Title}}</h1>
{{end}}{{range .Plots}}{{if .Title}}<h2>{{.Title}}</h2>
{{end}}<div id="{{.ID}}" style="{{.Style}}"></div>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}{{end}}<script>
{{.Script}}</script>
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// block is the markup surrounding one plot.
type block struct {
	Title      string
	ID         safehtml.Identifier
	Style      safehtml.Style
	Paragraphs []safehtml.HTML
}

// Document is a sealed page.  It is immutable, and writes the same bytes
// every time.
type Document struct {
	title   string
	scripts []safehtml.TrustedResourceURL
	blocks  []block
	script  string
	time    bool
	symbols bool
}

// newDocument freezes the provided plots.  Series and options are
// serialized here, so that any unencodable value is reported at seal time.
func newDocument(title string, sources Sources, plots []*plot.Plot) (*Document, error) {
	ret := &Document{
		title: title,
	}
	var script strings.Builder
	script.WriteString("$(function () {\n")
	for _, p := range plots {
		ret.time = ret.time || p.UsesTime()
		ret.symbols = ret.symbols || p.UsesSymbols()
		ret.blocks = append(ret.blocks, newBlock(p))
		if err := writePlotScript(&script, p); err != nil {
			return nil, err
		}
	}
	script.WriteString("});\n")
	ret.script = script.String()
	ret.scripts = sources.scripts(ret.time, ret.symbols)
	return ret, nil
}

func newBlock(p *plot.Plot) block {
	width, height := p.Dimensions()
	ret := block{
		Title: p.TitleText(),
		ID:    safehtml.IdentifierFromConstantPrefix("plot", strconv.Itoa(p.Index())),
		Style: style.Size(width, height).Define(),
	}
	for _, para := range p.Paragraphs() {
		if para.Raw {
			ret.Paragraphs = append(ret.Paragraphs, uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(para.Text))
		} else {
			ret.Paragraphs = append(ret.Paragraphs, safehtml.HTMLEscaped(para.Text))
		}
	}
	return ret
}

// writePlotScript writes the declarations and the flot call drawing p.
func writePlotScript(w *strings.Builder, p *plot.Plot) error {
	name := p.VarName()
	var vars []string
	for idx, s := range p.Series() {
		data, err := s.Tree().MarshalJSON()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidValue, err, "cannot encode series %d (%q) of plot %d", idx+1, s.Label(), p.Index())
		}
		v := fmt.Sprintf("%s_%d", name, idx+1)
		vars = append(vars, v)
		fmt.Fprintf(w, "var %s = %s;\n", v, data)
	}
	options, err := p.Options().MarshalJSON()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidValue, err, "cannot encode options of plot %d", p.Index())
	}
	optionsVar := name + "_options"
	fmt.Fprintf(w, "var %s = %s;\n", optionsVar, options)
	for _, a := range p.Assignments() {
		fmt.Fprintf(w, "%s.%s = %s;\n", optionsVar, a.Path, a.Expr)
	}
	fmt.Fprintf(w, "$.plot($(%q), [%s], %s);\n", "#"+p.Placeholder(), strings.Join(vars, ", "), optionsVar)
	return nil
}

// Title returns the document's title.
func (d *Document) Title() string {
	return d.title
}

// UsesTime returns true if any of the document's plots has a time axis.
func (d *Document) UsesTime() bool {
	return d.time
}

// UsesSymbols returns true if any of the document's plots needs the symbol
// plugin.
func (d *Document) UsesSymbols() bool {
	return d.symbols
}

// WriteTo writes the document's HTML to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	headTitle := d.title
	if headTitle == "" {
		headTitle = defaultTitle
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, struct {
		HeadTitle string
		Title     string
		Scripts   []safehtml.TrustedResourceURL
		Plots     []block
		Script    safehtml.Script
	}{
		HeadTitle: headTitle,
		Title:     d.title,
		Scripts:   d.scripts,
		Plots:     d.blocks,
		Script:    uncheckedconversions.ScriptFromStringKnownToSatisfyTypeContract(d.script),
	}); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidValue, err, "cannot execute page template")
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		return n, errors.Wrap(errors.ErrCodeIO, err, "cannot write page")
	}
	return n, nil
}
