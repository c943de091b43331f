package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/raterudder/solarcalc/pkg/country"
	"github.com/raterudder/solarcalc/pkg/types"
)

type catalogResponse struct {
	Categories []string            `json:"categories"`
	Items      []types.CatalogItem `json:"items"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	catalog := s.calc.Catalog()
	category := r.URL.Query().Get("category")
	term := strings.TrimSpace(r.URL.Query().Get("q"))

	items := []types.CatalogItem{}
	for _, item := range catalog.Filter(category) {
		if term == "" || strings.Contains(strings.ToLower(item.Title), strings.ToLower(term)) {
			items = append(items, item)
		}
	}

	writeJSON(w, catalogResponse{
		Categories: catalog.Categories(),
		Items:      items,
	})
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	bedrooms, err := strconv.Atoi(r.PathValue("bedrooms"))
	if err != nil || bedrooms < 1 {
		writeJSONError(w, "bedrooms must be a positive integer", http.StatusBadRequest)
		return
	}

	switch mode := r.URL.Query().Get("mode"); mode {
	case "", "standard":
		writeJSON(w, s.calc.StandardTemplate(bedrooms))
	case "assistive":
		writeJSON(w, struct {
			Appliances []types.ApplianceEntry `json:"appliances"`
		}{Appliances: s.calc.AssistiveTemplate(bedrooms)})
	default:
		writeJSONError(w, "unknown template mode: "+mode, http.StatusBadRequest)
	}
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.calc.Countries().Profiles())
}

type detectedCountry struct {
	Code     string                `json:"code"`
	Profile  types.CountryProfile  `json:"profile"`
	Currency types.CurrencyDisplay `json:"currency"`
}

func (s *Server) handleDetectCountry(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		writeJSONError(w, "invalid lat", http.StatusBadRequest)
		return
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		writeJSONError(w, "invalid lng", http.StatusBadRequest)
		return
	}

	code := country.Detect(lat, lng)
	profile, _ := s.calc.Countries().Lookup(code)
	writeJSON(w, detectedCountry{
		Code:     code,
		Profile:  profile,
		Currency: s.calc.Countries().CurrencyDisplay(code),
	})
}
