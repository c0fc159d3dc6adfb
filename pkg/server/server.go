package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/fieldconfig"
	"github.com/goliatone/go-textfield/pkg/render"
	"github.com/goliatone/go-textfield/pkg/renderers/html"
	"github.com/goliatone/go-textfield/pkg/renderers/tui"
)

// IconHandler reacts to icon clicks on a hosted field.
type IconHandler func(name string, h field.Handle)

type config struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	namespace  string
	renderers  *render.Registry
	palette    render.Palette
	onIcon     IconHandler
}

// Option configures the server.
type Option func(*config)

// WithLogger sets the structured logger for requests and field transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRegistry registers metrics on registry, which /metrics then serves.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *config) {
		if registry != nil {
			c.registerer = registry
			c.gatherer = registry
		}
	}
}

// WithNamespace sets the metrics namespace (default: "textfield").
func WithNamespace(namespace string) Option {
	return func(c *config) {
		if namespace != "" {
			c.namespace = namespace
		}
	}
}

// WithRenderers replaces the renderer registry. The default holds the HTML
// renderer as default plus the ansi renderer.
func WithRenderers(registry *render.Registry) Option {
	return func(c *config) {
		if registry != nil {
			c.renderers = registry
		}
	}
}

// WithPalette sets the palette views are derived with.
func WithPalette(palette render.Palette) Option {
	return func(c *config) {
		c.palette = palette
	}
}

// WithIconHandler installs the icon click behavior for every field.
func WithIconHandler(fn IconHandler) Option {
	return func(c *config) {
		c.onIcon = fn
	}
}

type entry struct {
	mu      sync.Mutex
	field   *field.Field
	version uint64
}

// locked runs fn while holding the entry lock. The lock is released even when
// fn panics.
func (e *entry) locked(fn func(f *field.Field)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.field)
}

// Server hosts mounted fields behind a chi router.
type Server struct {
	cfg     config
	fields  map[string]*entry
	metrics *metrics
	router  chi.Router
}

// New mounts one field per configuration in store.
func New(store *fieldconfig.Store, options ...Option) (*Server, error) {
	if store.Empty() {
		return nil, ErrNoFields
	}

	registry := prometheus.NewRegistry()
	cfg := config{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		registerer: registry,
		gatherer:   registry,
		namespace:  "textfield",
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.renderers == nil {
		renderers, err := defaultRenderers(cfg.logger)
		if err != nil {
			return nil, err
		}
		cfg.renderers = renderers
	}

	s := &Server{
		cfg:     cfg,
		fields:  make(map[string]*entry),
		metrics: newMetrics(cfg),
	}

	for _, name := range store.Names() {
		fc, _ := store.Field(name)
		e := &entry{}
		extra := []field.Option{field.WithLogger(cfg.logger)}
		if cfg.onIcon != nil {
			fieldName := name
			extra = append(extra, field.WithIconClick(func(h field.Handle) {
				cfg.onIcon(fieldName, h)
			}))
		}
		f, err := fc.Build(extra...)
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		f.Mount()
		// Subscribers run under the entry lock held by the handler.
		f.Subscribe(func(field.State) { e.version++ })
		e.field = f
		s.fields[name] = e
	}

	s.router = s.routes()
	return s, nil
}

func defaultRenderers(logger *slog.Logger) (*render.Registry, error) {
	htmlRenderer, err := html.New(html.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	return render.NewRegistry(htmlRenderer, tui.NewStaticRenderer())
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.cfg.logger, s.metrics))

	r.Get("/fields", s.handleList)
	r.Route("/fields/{name}", func(r chi.Router) {
		r.Get("/", s.handleRender)
		r.Get("/state", s.handleState)
		r.Put("/value", s.handleSetValue)
		r.Post("/events/{event}", s.handleEvent)
		r.Post("/test", s.handleTest)
		r.Post("/clear", s.handleClear)
	})
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(html.AssetsFS()))))
	r.Handle("/metrics", promhttp.HandlerFor(s.cfg.gatherer, promhttp.HandlerOpts{}))
	return r
}
