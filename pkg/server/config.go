package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/raterudder/solarcalc/pkg/log"
	"github.com/raterudder/solarcalc/pkg/storage"
	"github.com/raterudder/solarcalc/pkg/types"
)

func (s *Server) requestConfigKey(r *http.Request) string {
	if key := r.URL.Query().Get("key"); key != "" {
		return key
	}
	return s.configKey
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := s.requestConfigKey(r)

	cfg, err := s.storage.GetConfiguration(ctx, key)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to get configuration", slog.String("key", key), slog.Any("error", err))
		writeJSONError(w, "failed to get configuration", http.StatusInternalServerError)
		return
	}
	if cfg == nil {
		writeJSONError(w, "configuration not found", http.StatusNotFound)
		return
	}
	writeJSON(w, cfg)
}

func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := s.requestConfigKey(r)

	var cfg types.SavedConfiguration
	if !decodeBody(w, r, &cfg) {
		return
	}
	if err := types.ValidateConfiguration(&cfg); err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.storage.SetConfiguration(ctx, key, &cfg); err != nil {
		if errors.Is(err, storage.ErrEmptyKey) {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "failed to save configuration", slog.String("key", key), slog.Any("error", err))
		writeJSONError(w, "failed to save configuration", http.StatusInternalServerError)
		return
	}
	log.Ctx(ctx).InfoContext(ctx, "saved configuration", slog.String("key", key), slog.Int("appliances", len(cfg.Appliances)))

	writeJSON(w, struct {
		Key string `json:"key"`
	}{Key: key})
}

func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	keys, err := s.storage.ListConfigurationKeys(ctx)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to list configurations", slog.Any("error", err))
		writeJSONError(w, "failed to list configurations", http.StatusInternalServerError)
		return
	}
	if keys == nil {
		keys = []string{}
	}
	writeJSON(w, keys)
}
