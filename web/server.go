// Package web serves a localhost-only single-user JSON API over the stored
// travel document; it intentionally has no auth/CSRF protection in this mode.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"voyago/config"
	"voyago/output"
	"voyago/roadmap"
	"voyago/stats"
	"voyago/storage"
)

type Server struct {
	store *storage.SQLiteStore
	cfg   config.Config
	mux   *http.ServeMux

	// mu serializes load-mutate-save cycles so concurrent requests never
	// interleave partial document writes.
	mu sync.Mutex
}

type documentResponse struct {
	City        string             `json:"city"`
	LastUpdated string             `json:"lastUpdated"`
	Roadmap     []roadmap.Activity `json:"roadmap"`
	Shops       []roadmap.Shop     `json:"shops"`
	Vinyl       []roadmap.Shop     `json:"vinyl"`
}

type statusMutationRequest struct {
	Status string `json:"status"`
}

type toggleMutationRequest struct {
	Flag string `json:"flag"`
}

type activityCreateRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Place    string `json:"place"`
	Notes    string `json:"notes"`
	Pass     string `json:"pass"`
	Status   string `json:"status"`
}

func NewServer(store *storage.SQLiteStore, cfg config.Config) http.Handler {
	server := &Server{store: store, cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/document", server.handleDocument)
	mux.HandleFunc("GET /api/stats", server.handleStats)
	mux.HandleFunc("GET /api/cities", server.handleCities)
	mux.HandleFunc("GET /api/export", server.handleExport)
	mux.HandleFunc("POST /api/activities", server.handleActivityCreate)
	mux.HandleFunc("POST /api/activities/{id}/status", server.handleActivityStatus)
	mux.HandleFunc("POST /api/shops/{id}/toggle", server.handleShopToggle)
	mux.HandleFunc("DELETE /api/records/{id}", server.handleRecordDelete)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// resolveCity picks the city context: explicit query parameter, then the
// stored active city, then the configured fallback.
func (s *Server) resolveCity(r *http.Request) (string, error) {
	if city := strings.TrimSpace(r.URL.Query().Get("city")); city != "" {
		return city, nil
	}
	active, err := s.store.ActiveCity()
	if err != nil {
		return "", err
	}
	if active != "" {
		return active, nil
	}
	return s.cfg.City.Fallback, nil
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	city, err := s.resolveCity(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	doc, lastUpdated, err := s.store.LoadDocument(city)
	if err != nil && !errors.Is(err, storage.ErrDocumentNotFound) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, documentResponse{
		City:        city,
		LastUpdated: lastUpdated,
		Roadmap:     emptyIfNilActivities(doc.Roadmap),
		Shops:       emptyIfNilShops(doc.Shops),
		Vinyl:       emptyIfNilShops(doc.Vinyl),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	city, err := s.resolveCity(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	doc, err := s.store.LoadOrInit(city)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats.Summarize(doc))
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.store.ListCities()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"cities": cities})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	city, err := s.resolveCity(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	doc, lastUpdated, err := s.store.LoadDocument(city)
	if err != nil && !errors.Is(err, storage.ErrDocumentNotFound) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := output.DefaultJSONFilename(time.Now())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	payload := documentResponse{
		City:        city,
		LastUpdated: lastUpdated,
		Roadmap:     emptyIfNilActivities(doc.Roadmap),
		Shops:       emptyIfNilShops(doc.Shops),
		Vinyl:       emptyIfNilShops(doc.Vinyl),
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(payload)
}

func (s *Server) handleActivityCreate(w http.ResponseWriter, r *http.Request) {
	var req activityCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Activity) == "" {
		http.Error(w, "activity description is required", http.StatusBadRequest)
		return
	}

	city, err := s.resolveCity(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Manual entries follow the same derivation rules as imported rows:
	// fresh id, maps link from the place, status normalized.
	activity := roadmap.Activity{
		ID:      roadmap.NewRecordID("activity"),
		Date:    req.Date,
		Time:    req.Time,
		Label:   strings.TrimSpace(req.Activity),
		Place:   req.Place,
		Address: req.Place,
		Pass:    req.Pass,
		Status:  roadmap.ParseStatus(req.Status),
		Notes:   req.Notes,
		MapsURL: roadmap.MapsSearchURL(req.Place),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.LoadOrInit(city)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	doc.Roadmap = append(doc.Roadmap, activity)
	if err := s.store.SaveDocument(city, doc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, activity)
}

func (s *Server) handleActivityStatus(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	var req statusMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	city, err := s.resolveCity(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.LoadOrInit(city)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !doc.SetActivityStatus(id, roadmap.ParseStatus(req.Status)) {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}
	if err := s.store.SaveDocument(city, doc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, doc.FindActivity(id))
}

func (s *Server) handleShopToggle(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	var req toggleMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	city, err := s.resolveCity(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.LoadOrInit(city)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var found bool
	switch strings.ToLower(strings.TrimSpace(req.Flag)) {
	case "visited":
		_, found = doc.ToggleVisited(id)
	case "favorite":
		_, found = doc.ToggleFavorite(id)
	default:
		http.Error(w, "flag must be visited or favorite", http.StatusBadRequest)
		return
	}
	if !found {
		http.Error(w, "shop not found", http.StatusNotFound)
		return
	}
	if err := s.store.SaveDocument(city, doc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, doc.FindShop(id))
}

func (s *Server) handleRecordDelete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))

	city, err := s.resolveCity(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.LoadOrInit(city)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !doc.Remove(id) {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := s.store.SaveDocument(city, doc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func emptyIfNilActivities(activities []roadmap.Activity) []roadmap.Activity {
	if activities == nil {
		return []roadmap.Activity{}
	}
	return activities
}

func emptyIfNilShops(shops []roadmap.Shop) []roadmap.Shop {
	if shops == nil {
		return []roadmap.Shop{}
	}
	return shops
}
