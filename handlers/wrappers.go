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

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// RequestIDHeader is the response header carrying a request's ID.
const RequestIDHeader = "X-Request-Id"

var requestIDKey contextKey = "flotviz_request_id"

// RequestIDOf returns the ID attached to the provided Context by
// WithRequestID, or the empty string.
func RequestIDOf(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// statusRecorder captures the status written through a ResponseWriter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// WithRequestID returns a WrapFunc tagging each request with a fresh ID,
// returned in the X-Request-Id header, and logging the request's outcome to
// logger.
func WithRequestID(logger *log.Logger) WrapFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			id := uuid.NewString()
			start := time.Now()
			w.Header().Set(RequestIDHeader, id)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next(rec, req.WithContext(context.WithValue(req.Context(), requestIDKey, id)))
			logger.Info("served", "id", id, "method", req.Method, "path", req.URL.Path, "status", rec.status, "elapsed", time.Since(start).Round(time.Microsecond))
		}
	}
}
