package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/levenlabs/go-lflag"
	"github.com/raterudder/solarcalc/pkg/calculator"
	"github.com/raterudder/solarcalc/pkg/log"
	"github.com/raterudder/solarcalc/pkg/storage"
	"github.com/raterudder/solarcalc/pkg/types"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Server serves the calculator HTTP API. Calculations are stateless; only
// saved configurations touch storage.
type Server struct {
	calc    *calculator.Calculator
	storage storage.Database

	listenAddr string
	configKey  string
	serverName string
	httpServer *http.Server
}

// New returns a Server for calc and db that stores configurations under
// configKey.
func New(calc *calculator.Calculator, db storage.Database, configKey string) *Server {
	if configKey == "" {
		configKey = types.DefaultConfigurationKey
	}
	return &Server{
		calc:       calc,
		storage:    db,
		configKey:  configKey,
		serverName: "solarcalc",
	}
}

// Configured initializes the Server with dependencies.
// It uses lflag to register command-line flags for configuration.
func Configured(calc *calculator.Calculator, db storage.Database) *Server {
	srv := New(calc, db, "")
	revision := os.Getenv("K_REVISION")
	if revision != "" {
		srv.serverName = revision
	}

	// get the port from PORT when running in cloud run
	port := os.Getenv("PORT")
	if port == "" {
		// otherwise default to 8080
		port = "8080"
	}

	listenAddr := lflag.String("http-listen", ":"+port, "HTTP server listen address")
	configKey := lflag.String("config-key", types.DefaultConfigurationKey, "default key saved configurations are stored under")

	lflag.Do(func() {
		srv.listenAddr = *listenAddr
		if *configKey != "" {
			srv.configKey = *configKey
		}
	})

	return srv
}

func (s *Server) setupHandler() http.Handler {
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/catalog", s.handleCatalog)
	apiMux.HandleFunc("GET /api/templates/{bedrooms}", s.handleTemplate)
	apiMux.HandleFunc("GET /api/countries", s.handleCountries)
	apiMux.HandleFunc("GET /api/country", s.handleDetectCountry)
	apiMux.HandleFunc("POST /api/calculate/standard", s.handleCalculateStandard)
	apiMux.HandleFunc("POST /api/calculate/assistive", s.handleCalculateAssistive)
	apiMux.HandleFunc("POST /api/calculate/advanced", s.handleCalculateAdvanced)
	apiMux.HandleFunc("POST /api/selection", s.handleEditSelection)
	apiMux.HandleFunc("POST /api/savings", s.handleSavings)
	apiMux.HandleFunc("GET /api/config", s.handleGetConfig)
	apiMux.HandleFunc("POST /api/config", s.handleSetConfig)
	apiMux.HandleFunc("GET /api/configs", s.handleListConfigs)

	mux := http.NewServeMux()
	mux.Handle("/api/", apiMux)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return s.revisionMiddleware(gziphandler.GzipHandler(s.securityHeadersMiddleware(mux)))
}

// Run starts the HTTP server and blocks until the context is canceled or an error occurs.
// It also handles graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.setupHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	// use a channel to capturing server errors
	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		log.Ctx(ctx).InfoContext(ctx, "starting server", slog.String("addr", s.listenAddr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Ctx(ctx).InfoContext(ctx, "shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

func writeJSONError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		slog.Warn("failed to write error response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

// decodeBody reads a JSON request body into v, answering the request itself
// when the body is unusable.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeJSONError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) revisionMiddleware(next http.Handler) http.Handler {
	if s.serverName == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", s.serverName)
		next.ServeHTTP(w, r)
	})
}
