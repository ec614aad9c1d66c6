// Package api serves a read-only status and preview HTTP API. It observes
// session snapshots over the bus and never touches session state.
package api

import (
	"context"
	"image/png"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ItsNotGoodName/x-wallsplit/internal/build"
	"github.com/ItsNotGoodName/x-wallsplit/internal/bus"
	"github.com/ItsNotGoodName/x-wallsplit/internal/layout"
	"github.com/ItsNotGoodName/x-wallsplit/internal/preview"
	"github.com/ItsNotGoodName/x-wallsplit/internal/session"
	"github.com/ItsNotGoodName/x-wallsplit/pkg/chiext"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const previewWidth = 960

func NewServer(address string, hub *bus.Hub[session.Snapshot], renderer *preview.Renderer, l layout.Layout, initial session.Snapshot) *Server {
	return &Server{
		address:  address,
		hub:      hub,
		renderer: renderer,
		layout:   l,
		last:     initial,
	}
}

type Server struct {
	address  string
	hub      *bus.Hub[session.Snapshot]
	renderer *preview.Renderer
	layout   layout.Layout

	mu   sync.RWMutex
	last session.Snapshot
}

func (s *Server) String() string {
	return "api.Server(address=" + s.address + ")"
}

func (s *Server) Serve(ctx context.Context) error {
	snapC, unsub := s.hub.Subscribe(ctx)
	defer unsub()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case snap := <-snapC:
				s.mu.Lock()
				s.last = snap
				s.mu.Unlock()
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID, chiext.Logger(), middleware.Recoverer)

	humaAPI := humachi.New(r, huma.DefaultConfig("x-wallsplit", build.Current.Version))
	huma.Register(humaAPI, huma.Operation{
		OperationID: "get-status",
		Method:      http.MethodGet,
		Path:        "/api/status",
		Summary:     "Current placement and coverage",
	}, s.getStatus)
	huma.Register(humaAPI, huma.Operation{
		OperationID: "get-layout",
		Method:      http.MethodGet,
		Path:        "/api/layout",
		Summary:     "Monitor layout",
	}, s.getLayout)
	huma.Register(humaAPI, huma.Operation{
		OperationID: "get-build",
		Method:      http.MethodGet,
		Path:        "/api/build",
		Summary:     "Build information",
	}, s.getBuild)

	r.Get("/preview.png", s.previewPNG)

	srv := &http.Server{Addr: s.address, Handler: r}

	errC := make(chan error, 1)
	go func() { errC <- srv.ListenAndServe() }()

	slog.Info("Starting HTTP server", "address", s.address)

	select {
	case <-ctx.Done():
		srv.Shutdown(context.Background())
		<-errC
		return ctx.Err()
	case err := <-errC:
		return err
	}
}

type StatusOutput struct {
	Body session.Snapshot
}

func (s *Server) getStatus(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &StatusOutput{Body: s.last}, nil
}

type LayoutMonitor struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type LayoutOutput struct {
	Body struct {
		Monitors []LayoutMonitor `json:"monitors"`
	}
}

func (s *Server) getLayout(ctx context.Context, _ *struct{}) (*LayoutOutput, error) {
	out := &LayoutOutput{}
	for _, m := range s.layout.Monitors {
		out.Body.Monitors = append(out.Body.Monitors, LayoutMonitor{
			Name:   m.Name,
			X:      m.Rect.Min.X,
			Y:      m.Rect.Min.Y,
			Width:  m.Rect.Dx(),
			Height: m.Rect.Dy(),
		})
	}
	return out, nil
}

type BuildOutput struct {
	Body build.Build
}

func (s *Server) getBuild(ctx context.Context, _ *struct{}) (*BuildOutput, error) {
	return &BuildOutput{Body: build.Current}, nil
}

func (s *Server) previewPNG(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	snap := s.last
	s.mu.RUnlock()

	bounds := s.layout.Bounds
	view := preview.FitView(bounds, previewWidth, previewWidth, 0)
	width, height := view.WindowSize(bounds)

	// renderer cache is not safe for concurrent frames
	s.mu.Lock()
	frame := s.renderer.Frame(width, height, snap.Transform, view)
	s.mu.Unlock()
	preview.StrokeOutlines(frame, snap.Coverage, view)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, frame); err != nil {
		slog.Error("Failed to encode preview", "error", err)
	}
}
