package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/raterudder/solarcalc/pkg/appliance"
	"github.com/raterudder/solarcalc/pkg/calculator"
	"github.com/raterudder/solarcalc/pkg/log"
	"github.com/raterudder/solarcalc/pkg/types"
)

func (s *Server) handleCalculateStandard(w http.ResponseWriter, r *http.Request) {
	var form calculator.StandardForm
	if !decodeBody(w, r, &form) {
		return
	}
	writeJSON(w, s.calc.Standard(form))
}

func (s *Server) handleCalculateAssistive(w http.ResponseWriter, r *http.Request) {
	var form calculator.AssistiveForm
	if !decodeBody(w, r, &form) {
		return
	}
	writeJSON(w, s.calc.Assistive(form))
}

func (s *Server) handleCalculateAdvanced(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var form calculator.AdvancedForm
	if !decodeBody(w, r, &form) {
		return
	}

	res, err := s.calc.Advanced(ctx, form)
	switch {
	case err == nil:
		writeJSON(w, res)
	case errors.Is(err, calculator.ErrInvalidLocation):
		writeJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, calculator.ErrNoSolarData):
		writeJSONError(w, err.Error(), http.StatusServiceUnavailable)
	default:
		log.Ctx(ctx).ErrorContext(ctx, "failed to run advanced calculation", slog.Any("error", err))
		writeJSONError(w, err.Error(), http.StatusBadGateway)
	}
}

func (s *Server) handleEditSelection(w http.ResponseWriter, r *http.Request) {
	var edit calculator.SelectionEdit
	if !decodeBody(w, r, &edit) {
		return
	}

	res, err := s.calc.EditSelection(edit)
	switch {
	case err == nil:
		writeJSON(w, res)
	case errors.Is(err, calculator.ErrUnknownAppliance), errors.Is(err, appliance.ErrNotSelected):
		writeJSONError(w, err.Error(), http.StatusNotFound)
	default:
		writeJSONError(w, err.Error(), http.StatusBadRequest)
	}
}

type savingsRequest struct {
	AnnualOutput types.Number `json:"annualOutput"` // kWh
	Country      string       `json:"country"`
}

type savingsResponse struct {
	Country  types.CountryProfile  `json:"country"`
	Currency types.CurrencyDisplay `json:"currency"`
	calculator.SavingsResult
}

func (s *Server) handleSavings(w http.ResponseWriter, r *http.Request) {
	var req savingsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	code := strings.ToUpper(strings.TrimSpace(req.Country))
	profile, _ := s.calc.Countries().Lookup(code)
	writeJSON(w, savingsResponse{
		Country:       profile,
		Currency:      s.calc.Countries().CurrencyDisplay(code),
		SavingsResult: s.calc.Savings(req.AnnualOutput.FloatOr(0), code),
	})
}
