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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/page"
	"github.com/xuri/excelize/v2"
	"golang.org/x/tools/txtar"
)

const (
	chartFile = "chart.toml"
	wantFile  = "want"
	errorFile = "error"
)

// expectInOrder checks that each non-empty line of want appears in got,
// each after the previous one.
func expectInOrder(t *testing.T, got, want string) {
	t.Helper()
	rest := got
	for _, line := range strings.Split(want, "\n") {
		if line == "" {
			continue
		}
		idx := strings.Index(rest, line)
		if idx < 0 {
			t.Fatalf("missing or misplaced %q in:\n%s", line, got)
		}
		rest = rest[idx+len(line):]
	}
}

func render(t *testing.T, c *Chart) (string, error) {
	t.Helper()
	pg, err := c.Build(page.WithAssets(page.DefaultSources()))
	if err != nil {
		return "", err
	}
	out, err := pg.Bytes()
	return string(out), err
}

// TestGolden builds each chart in testdata/*.txtar.  Each archive holds a
// chart.toml, any data files it reads, and either a 'want' file listing
// lines expected, in order, in the rendered page, or an 'error' file holding
// the expected error code.
func TestGolden(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(archives) == 0 {
		t.Fatal("no golden archives found")
	}
	for _, archive := range archives {
		t.Run(strings.TrimSuffix(filepath.Base(archive), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(archive)
			if err != nil {
				t.Fatalf("cannot parse %s: %s", archive, err)
			}
			dir := t.TempDir()
			var want, wantCode string
			for _, f := range ar.Files {
				switch f.Name {
				case wantFile:
					want = string(f.Data)
				case errorFile:
					wantCode = strings.TrimSpace(string(f.Data))
				default:
					if err := os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0o644); err != nil {
						t.Fatal(err)
					}
				}
			}
			got, err := func() (string, error) {
				c, err := Load(filepath.Join(dir, chartFile))
				if err != nil {
					return "", err
				}
				return render(t, c)
			}()
			if wantCode != "" {
				if err == nil {
					t.Fatalf("expected a %s error, got none", wantCode)
				}
				if gotCode := errors.GetCode(err); string(gotCode) != wantCode {
					t.Fatalf("got error %v (code %s), want code %s", err, gotCode, wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %s", err)
			}
			expectInOrder(t, got, want)
		})
	}
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
title = "t"
width = 100
height = 50

[[plot]]
title = "a"

[[plot.series]]
kind = "bars"
label = "s"
points = [[1, 2]]
align = "center"
`))
	if err != nil {
		t.Fatalf("Parse() yielded unexpected error %s", err)
	}
	want := &Chart{
		Title:  "t",
		Width:  100,
		Height: 50,
		Plots: []Plot{{
			Title: "a",
			Series: []Series{{
				Kind:   "bars",
				Label:  "s",
				Align:  "center",
				Source: Source{Points: [][2]float64{{1, 2}}},
			}},
		}},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Parse() diff (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Load() of a missing file yielded %v, want a %s error", err, errors.ErrCodeNotFound)
	}
}

func TestXLSX(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range map[string]any{
		"A1": "label", "B1": "x", "C1": "y",
		"A2": "first", "B2": 1, "C2": 2.5,
		"A3": "second", "B3": 2, "C3": 5,
	} {
		if err := f.SetCellValue("Sheet1", cell, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(filepath.Join(dir, "data.xlsx")); err != nil {
		t.Fatalf("cannot save workbook: %s", err)
	}
	c := &Chart{
		Dir: dir,
		Plots: []Plot{{
			Series: []Series{{
				Label: "sheet",
				Source: Source{
					XLSX:    "data.xlsx",
					XColumn: "B",
					YColumn: "C",
					Header:  true,
				},
			}},
		}},
	}
	got, err := render(t, c)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	expectInOrder(t, got, `var plot1_1 = {"label":"sheet","data":[[1,2.5],[2,5]],"lines":{"show":true}};`)
}
