package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/sanverite/screener-stub/internal/config"
)

// ServerOptions configures the HTTP server.
// Zero values fall back to the defaults applied in NewServer.
type ServerOptions struct {
	Addr              string
	Variant           Variant
	Env               config.Env
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	Logger            *zap.Logger
	Clock             clock.Clock
	Metrics           *Metrics
}

// Server hosts the stub API.
type Server struct {
	http    *http.Server
	variant Variant
	env     config.Env
	logger  *zap.Logger
	clock   clock.Clock
	metrics *Metrics
	opts    ServerOptions

	mu       sync.Mutex
	listener net.Listener
	running  bool
}

// NewServer constructs a server for opts.Variant (Minimal when unset).
// The server does not listen until Start is called.
func NewServer(opts ServerOptions) *Server {
	if opts.Variant.Name == "" {
		opts.Variant = Minimal
	}
	if opts.Addr == "" {
		opts.Addr = net.JoinHostPort(config.ListenHost, strconv.Itoa(opts.Variant.DefaultPort))
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 2 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = config.DefaultShutdownTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}

	s := &Server{
		variant: opts.Variant,
		env:     opts.Env,
		logger:  opts.Logger,
		clock:   opts.Clock,
		metrics: opts.Metrics,
		opts:    opts,
	}

	mux := http.NewServeMux()
	for _, rt := range s.routes() {
		mux.Handle(rt.pattern, allowMethod(rt.method, rt.handler))
	}
	mux.Handle("/metrics", allowMethod(http.MethodGet, s.metrics.Handler()))
	mux.HandleFunc("/", s.handleNotFound)

	var h http.Handler = mux
	h = withRecover(h, s.logger)
	h = withAccessLog(h, s.logger, s.clock, s.metrics)
	h = withRequestID(h)

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           h,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		ErrorLog:          zap.NewStdLog(s.logger.Named("http")),
		BaseContext: func(net.Listener) context.Context {
			return context.Background()
		},
	}
	return s
}

// Handler returns the fully wrapped root handler.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start binds the listener and serves in a background goroutine.
// Bind errors are returned; calling Start on a running server is a no-op.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("api: listen on %s: %w", s.http.Addr, err)
	}
	s.listener = ln
	s.running = true

	s.logger.Info("listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("variant", s.variant.Name),
	)
	go func() {
		if err := s.http.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve failed", zap.Error(err))
		}
	}()
	return nil
}

// Stop gracefully shuts down the server, waiting up to ShutdownTimeout.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	timeout := s.opts.ShutdownTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	s.running = false
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("api: shutdown: %w", err)
	}
	s.logger.Info("stopped")
	return nil
}

// Addr returns the bound address once started, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.http.Addr
}

// allowMethod answers 405 for anything but method (HEAD is accepted with GET).
func allowMethod(method string, next http.Handler) http.Handler {
	allow := method
	if method == http.MethodGet {
		allow = http.MethodGet + ", " + http.MethodHead
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method && !(method == http.MethodGet && r.Method == http.MethodHead) {
			w.Header().Set("Allow", allow)
			writeJSON(w, http.StatusMethodNotAllowed, APIError{Error: "Method not allowed"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}
