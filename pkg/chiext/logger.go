// Package chiext extends chi with slog-backed middleware.
package chiext

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request through slog, tagged with the request ID
// when the RequestID middleware runs first.
func Logger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				scheme := "http"
				if r.TLS != nil {
					scheme = "https"
				}
				msg := fmt.Sprintf("%s %s://%s%s %s", r.Method, scheme, r.Host, r.RequestURI, r.Proto)

				attrs := []any{}
				if reqID := middleware.GetReqID(r.Context()); reqID != "" {
					attrs = append(attrs, slog.String("request", reqID))
				}
				attrs = append(attrs,
					slog.String("from", r.RemoteAddr),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.String("elapsed", time.Since(start).String()),
				)

				if ww.Status() >= 500 {
					slog.Error(msg, attrs...)
				} else {
					slog.Info(msg, attrs...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
