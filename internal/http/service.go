package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/invoicing-api/internal/config"
	"github.com/tuanvumaihuynh/invoicing-api/internal/http/apierr"
	"github.com/tuanvumaihuynh/invoicing-api/internal/http/metric"
	"github.com/tuanvumaihuynh/invoicing-api/internal/http/middleware"
	"github.com/tuanvumaihuynh/invoicing-api/internal/http/swagger"
	"github.com/tuanvumaihuynh/invoicing-api/internal/service"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/db"
)

var tracer = otel.Tracer("internal/http")

// Services groups the application services exposed over HTTP.
type Services struct {
	Client      service.ClientService
	Product     service.ProductService
	Invoice     service.InvoiceService
	InvoiceLine service.InvoiceLineService
	// Health, when set, backs /healthz.
	Health db.HealthChecker
}

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics

	svcs Services
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	svcs Services,
) *Service {
	return &Service{
		cfg:     cfg,
		logger:  log.With(slog.String("service", "http")),
		metrics: metric.New(prometheus.DefaultRegisterer),
		svcs:    svcs,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handler, err := s.Handler()
	if err != nil {
		return nil, err
	}

	return s.RunWithServer(ctx, handler)
}

// Handler builds the router with every middleware and route installed.
func (s *Service) Handler() (http.Handler, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		if err := swagger.Register(r); err != nil {
			return nil, fmt.Errorf("register swagger: %w", err)
		}
	}

	s.RegisterHandlers(r)

	return r, nil
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.ErrorContext(ctx, "http server stopped", slog.Any("error", err))
		}
	}()

	s.logger.InfoContext(ctx, "http server listening", slog.String("addr", srv.Addr))

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(s.cfg.CorsAllowedOrigins),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	info := newInfoHandler()
	r.Get("/", s.handle(info.Root))
	r.Get("/saludo/{nombre}", s.handle(info.Greet))
	r.Get("/info", s.handle(info.Info))
	r.Get(middleware.HealthPath, s.handle(newHealthHandler(s.svcs.Health).Health))

	clients := newClientHandler(s.svcs.Client)
	r.Route("/clientes", func(r chi.Router) {
		r.Post("/", s.handle(clients.CreateClient))
		r.Get("/", s.handle(clients.ListClients))
		r.Get("/{identificacion}", s.handle(clients.GetClient))
		r.Put("/{identificacion}", s.handle(clients.UpdateClient))
		r.Delete("/{identificacion}", s.handle(clients.DeleteClient))
	})

	products := newProductHandler(s.svcs.Product)
	r.Route("/productos", func(r chi.Router) {
		r.Post("/", s.handle(products.CreateProduct))
		r.Get("/", s.handle(products.ListProducts))
		r.Get("/id/{id}", s.handle(products.GetProductByID))
		r.Get("/{codigo}", s.handle(products.GetProduct))
		r.Put("/{codigo}", s.handle(products.UpdateProduct))
		r.Delete("/{codigo}", s.handle(products.DeleteProduct))
	})

	lines := newInvoiceLineHandler(s.svcs.InvoiceLine)
	for _, prefix := range []string{"/detalle_factura", "/detalle-factura"} {
		r.Route(prefix, func(r chi.Router) {
			r.Post("/", s.handle(lines.CreateInvoiceLine))
			r.Get("/", s.handle(lines.ListInvoiceLines))
			r.Get("/{id}", s.handle(lines.GetInvoiceLine))
		})
	}

	invoices := newInvoiceHandler(s.svcs.Invoice, s.svcs.InvoiceLine)
	r.Route("/factura", func(r chi.Router) {
		r.Post("/", s.handle(invoices.CreateInvoice))
		r.Get("/", s.handle(invoices.ListInvoices))
		r.Get("/{id}", s.handle(invoices.GetInvoice))
		r.Get("/{id}/detalle", s.handle(invoices.ListInvoiceLines))
		r.Put("/{id}", s.handle(invoices.UpdateInvoice))
		r.Delete("/{id}", s.handle(invoices.DeleteInvoice))
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

// handlerFunc is an http.HandlerFunc that reports failures as errors.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Service) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			s.handleResponseError(w, r, err)
		}
	}
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}
