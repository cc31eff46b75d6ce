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

package cli

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ilhamster/flotviz/chartfile"
	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/page"
)

func (c *CLI) renderCommand() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "render FILE.toml...",
		Short: "Render chart files to HTML",
		Long: `Render each chart file to an HTML page named after it, with a .html
extension.  Pages are written next to their chart files, or into --out-dir.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.renderAll(cmd.Context(), args, outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "directory to write pages into")
	return cmd
}

// outputPath returns the page path for the chart at input.
func outputPath(input, outDir string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".html"
	if outDir == "" {
		return filepath.Join(filepath.Dir(input), name)
	}
	return filepath.Join(outDir, name)
}

// renderAll renders the provided chart files concurrently, stopping at the
// first failure.
func (c *CLI) renderAll(ctx context.Context, inputs []string, outDir string) error {
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "cannot create %s", outDir)
		}
	}
	start := time.Now()
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(runtime.GOMAXPROCS(0))
	for _, input := range inputs {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.renderOne(input, outputPath(input, outDir))
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}
	c.Logger.Infof("Rendered %d chart(s) (%s)", len(inputs), time.Since(start).Round(time.Millisecond))
	return nil
}

func (c *CLI) renderOne(input, output string) error {
	c.Logger.Debugf("Rendering %s", input)
	chart, err := chartfile.Load(input)
	if err != nil {
		return err
	}
	pg, err := chart.Build(page.WithLogger(c.Logger))
	if err != nil {
		return errors.Wrap(errors.GetCode(err), err, "in %s", input)
	}
	if err := pg.RenderFile(output); err != nil {
		return err
	}
	c.Logger.Infof("Generated %s", output)
	return nil
}
