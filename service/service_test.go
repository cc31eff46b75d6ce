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

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartFormat = `title = %q

[[plot]]

[[plot.series]]
label = "line"
points = [[0, 1], [1, 2]]
`

func writeChart(t *testing.T, dir, name, title string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name+ChartExt)
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(chartFormat, title)), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func newService(t *testing.T, dir string) *Service {
	t.Helper()
	s, err := New(dir, 4, log.New(io.Discard), page.WithAssets(page.DefaultSources()))
	require.NoError(t, err)
	return s
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	writeChart(t, dir, "rates", "First", base)
	s := newService(t, dir)
	ctx := context.Background()

	body, err := s.Render(ctx, "rates")
	require.NoError(t, err)
	assert.Contains(t, string(body), "<h1>First</h1>")
	assert.Contains(t, string(body), `var plot1_1 = {"label":"line","data":[[0,1],[1,2]],"lines":{"show":true}};`)

	again, err := s.Render(ctx, "rates")
	require.NoError(t, err)
	assert.Equal(t, body, again)

	writeChart(t, dir, "rates", "Second", base.Add(time.Hour))
	edited, err := s.Render(ctx, "rates")
	require.NoError(t, err)
	assert.Contains(t, string(edited), "<h1>Second</h1>")
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad"+ChartExt), []byte("[[plot]]\nnope = 1\n"), 0o644))
	s := newService(t, dir)
	for _, test := range []struct {
		name     string
		wantCode errors.Code
	}{
		{"missing", errors.ErrCodeNotFound},
		{"../etc", errors.ErrCodeNotFound},
		{"", errors.ErrCodeNotFound},
		{"bad", errors.ErrCodeInvalidConfig},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := s.Render(context.Background(), test.name)
			require.Error(t, err)
			assert.Equal(t, test.wantCode, errors.GetCode(err))
		})
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeChart(t, dir, "b", "B", now)
	writeChart(t, dir, "a", "A", now)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
	names, err := newService(t, dir).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestRenderLogsRemote(t *testing.T) {
	var logs bytes.Buffer
	s, err := New(t.TempDir(), 4, log.New(&logs))
	require.NoError(t, err)
	r := chi.NewRouter()
	s.RegisterHandlers(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, logs.String(), "chart=nothing")
	assert.Contains(t, logs.String(), "remote=192.0.2.1:1234")
}

func TestRegisterHandlers(t *testing.T) {
	dir := t.TempDir()
	writeChart(t, dir, "rates", "Rates", time.Now())
	r := chi.NewRouter()
	newService(t, dir).RegisterHandlers(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/rates.html")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<h1>Rates</h1>")

	missing, err := http.Get(srv.URL + "/nothing")
	require.NoError(t, err)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
