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

// Package service renders a directory of chart files on demand, caching the
// rendered pages.
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/ilhamster/flotviz/chartfile"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/handlers"
	"github.com/ilhamster/flotviz/page"
)

// ChartExt is the extension of chart files.
const ChartExt = ".toml"

// pageFetcher renders chart files, caching rendered pages by path and
// modification time, so that edited charts are re-rendered.
type pageFetcher struct {
	chartRoot string
	opts      []page.Option
	logger    *log.Logger

	mu  sync.Mutex
	lru *simplelru.LRU
}

func newPageFetcher(chartRoot string, cap int, logger *log.Logger, opts []page.Option) (*pageFetcher, error) {
	lru, err := simplelru.NewLRU(cap, nil /* no onEvict policy */)
	if err != nil {
		return nil, err
	}
	return &pageFetcher{
		chartRoot: chartRoot,
		opts:      opts,
		logger:    logger,
		lru:       lru,
	}, nil
}

// validName returns true if name names a chart directly within the chart
// root.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func (pf *pageFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if !validName(name) {
		return nil, errors.New(errors.ErrCodeNotFound, "no chart named %q", name)
	}
	path := filepath.Join(pf.chartRoot, name+ChartExt)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "no chart named %q", name)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "cannot stat %s", path)
	}
	key := fmt.Sprintf("%s@%d", path, info.ModTime().UnixNano())
	pf.mu.Lock()
	pageIf, ok := pf.lru.Get(key)
	pf.mu.Unlock()
	if ok {
		body, ok := pageIf.([]byte)
		if !ok {
			return nil, fmt.Errorf("cached page for %s wasn't rendered HTML", path)
		}
		pf.logger.Debug("cache hit", "chart", name)
		return body, nil
	}
	chart, err := chartfile.Load(path)
	if err != nil {
		return nil, err
	}
	pg, err := chart.Build(pf.opts...)
	if err != nil {
		return nil, err
	}
	body, err := pg.Bytes()
	if err != nil {
		return nil, err
	}
	pf.mu.Lock()
	pf.lru.Add(key, body)
	pf.mu.Unlock()
	pf.logger.Debug("rendered chart", "chart", name, "bytes", len(body))
	return body, nil
}

// Service serves the charts in a directory.
type Service struct {
	fetcher     *pageFetcher
	pageHandler handlers.PageHandler
	logger      *log.Logger
}

// New returns a new Service rendering the chart files in chartRoot, caching
// up to cap rendered pages.  Pages are built with the provided options.
func New(chartRoot string, cap int, logger *log.Logger, opts ...page.Option) (*Service, error) {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	pf, err := newPageFetcher(chartRoot, cap, logger, opts)
	if err != nil {
		return nil, err
	}
	ret := &Service{
		fetcher: pf,
		logger:  logger,
	}
	ret.pageHandler = handlers.NewPageHandler(ret)
	return ret, nil
}

// Render renders the named chart.
func (s *Service) Render(ctx context.Context, name string) ([]byte, error) {
	body, err := s.fetcher.Fetch(ctx, name)
	if err != nil {
		kv := []any{"chart", name, "id", handlers.RequestIDOf(ctx), "err", err}
		if req, _ := handlers.RequestOf(ctx); req != nil {
			kv = append(kv, "remote", req.RemoteAddr)
		}
		s.logger.Warn("cannot render chart", kv...)
		return nil, err
	}
	return body, nil
}

// List returns the names of the charts in the chart root, sorted.
func (s *Service) List(ctx context.Context) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(s.fetcher.chartRoot, "*"+ChartExt))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "cannot list charts")
	}
	names := make([]string, len(paths))
	for idx, p := range paths {
		names[idx] = strings.TrimSuffix(filepath.Base(p), ChartExt)
	}
	sort.Strings(names)
	return names, nil
}

// RegisterHandlers registers the service's handlers on the provided router.
func (s *Service) RegisterHandlers(r chi.Router, wrappers ...handlers.WrapFunc) {
	for path, handler := range s.pageHandler.Wrap(wrappers...).HandlersByPath() {
		r.Get(path, handler)
	}
}
