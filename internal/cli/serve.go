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
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/ilhamster/flotviz/errors"
	"github.com/ilhamster/flotviz/handlers"
	"github.com/ilhamster/flotviz/page"
	"github.com/ilhamster/flotviz/service"
)

const (
	defaultAddr     = ":7410"
	defaultCacheCap = 16
	shutdownTimeout = 5 * time.Second
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		dir      string
		addr     string
		cacheCap int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of chart files",
		Long: `Serve every chart file in --dir at /NAME, rendering it on request.  Rendered
pages are cached until their chart file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.router(dir, cacheCap)
			if err != nil {
				return err
			}
			return c.serve(cmd.Context(), addr, r)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory of chart files")
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "address to listen on")
	cmd.Flags().IntVar(&cacheCap, "cache", defaultCacheCap, "number of rendered pages to cache")
	return cmd
}

// router returns the HTTP handler serving the charts in dir.
func (c *CLI) router(dir string, cacheCap int) (http.Handler, error) {
	svc, err := service.New(dir, cacheCap, c.Logger, page.WithLogger(c.Logger))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot create service")
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	svc.RegisterHandlers(r, handlers.WithRequestID(c.Logger))
	return r, nil
}

// serve serves h on addr until ctx is done.
func (c *CLI) serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		c.Logger.Infof("Serving charts at http://localhost%s", addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return errors.Wrap(errors.ErrCodeIO, err, "server failed")
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "cannot shut down server")
	}
	return ctx.Err()
}
