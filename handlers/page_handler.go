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

// Package handlers serves rendered flot pages over HTTP.
package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/safehtml/template"
	"github.com/ilhamster/flotviz/errors"
)

// HandlerFunc is a HTTP handler function.
type HandlerFunc func(http.ResponseWriter, *http.Request)

// WrapFunc is a function that rewrites a HandlerFunc.
type WrapFunc func(HandlerFunc) HandlerFunc

// Handler describes a flotviz HTTP handler.
type Handler interface {
	HandlersByPath() map[string]func(http.ResponseWriter, *http.Request)
}

// PageHandler is a Handler for rendered pages.  It supports a Wrap method
// that wraps all handlers, e.g. adding request IDs.
type PageHandler interface {
	Handler
	Wrap(...WrapFunc) Handler
}

// Renderer renders named pages.
type Renderer interface {
	// Render returns the HTML of the named page.  It returns an
	// ErrCodeNotFound error if there is no such page.
	Render(ctx context.Context, name string) ([]byte, error)
	// List returns the names of all renderable pages, sorted.
	List(ctx context.Context) ([]string, error)
}

// pageHandler is an http.Handler serving rendered pages.
type pageHandler struct {
	r        Renderer
	wrappers []WrapFunc
}

// NewPageHandler returns a new Handler serving pages rendered by the
// provided Renderer.
func NewPageHandler(r Renderer) PageHandler {
	return &pageHandler{
		r: r,
	}
}

const (
	indexPath = "/"
	pagePath  = "/{name}"
	nameParam = "name"
	htmlExt   = ".html"
)

type contextKey string

var (
	httpReqKey contextKey = "flotviz_http_req"
)

// RequestOf returns the request a page or index is being rendered for, or
// nil outside of a request.  Renderers use it to annotate their logs.
func RequestOf(ctx context.Context) (*http.Request, error) {
	v := ctx.Value(httpReqKey)
	if v == nil {
		return nil, nil
	}
	req, ok := v.(*http.Request)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "context holds a %T, not a request", v)
	}
	return req, nil
}

func (ph *pageHandler) Wrap(wrappers ...WrapFunc) Handler {
	ph.wrappers = append(ph.wrappers, wrappers...)
	return ph
}

// HandlersByPath returns a mapping of chi route pattern to HTTP handler for
// this Handler.
func (ph *pageHandler) HandlersByPath() map[string]func(http.ResponseWriter, *http.Request) {
	var pageH HandlerFunc = ph.getPageHandler
	var indexH HandlerFunc = ph.getIndexHandler
	for _, wrapper := range ph.wrappers {
		pageH = wrapper(pageH)
		indexH = wrapper(indexH)
	}
	return map[string]func(http.ResponseWriter, *http.Request){
		indexPath: indexH,
		pagePath:  pageH,
	}
}

// statusOf maps a rendering error to an HTTP status.
func statusOf(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidValue:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func sendHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

func (ph *pageHandler) getPageHandler(w http.ResponseWriter, req *http.Request) {
	name := strings.TrimSuffix(chi.URLParam(req, nameParam), htmlExt)
	ctx := context.WithValue(req.Context(), httpReqKey, req)
	body, err := ph.r.Render(ctx, name)
	if err != nil {
		http.Error(w, "Render failed: "+err.Error(), statusOf(err))
		return
	}
	sendHTML(w, body)
}

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>flotviz</title>
</head>
<body>
<ul>
{{range .}}<li><a href="{{.URL}}">{{.Name}}</a></li>
{{end}}</ul>
</body>
</html>
`

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

type indexEntry struct {
	Name string
	URL  string
}

func (ph *pageHandler) getIndexHandler(w http.ResponseWriter, req *http.Request) {
	ctx := context.WithValue(req.Context(), httpReqKey, req)
	names, err := ph.r.List(ctx)
	if err != nil {
		http.Error(w, "List failed: "+err.Error(), statusOf(err))
		return
	}
	entries := make([]indexEntry, len(names))
	for idx, name := range names {
		entries[idx] = indexEntry{Name: name, URL: "/" + name + htmlExt}
	}
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, entries); err != nil {
		http.Error(w, "Failed to render index: "+err.Error(), http.StatusInternalServerError)
		return
	}
	sendHTML(w, buf.Bytes())
}
