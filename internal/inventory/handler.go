// internal/inventory/handler.go
package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes builds the food routes. Static segments are registered before the
// {id} parameter so chi resolves them first.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/foods", func(r chi.Router) {
		r.Get("/", h.handleListActive)
		r.Post("/", h.handleAddFood)
		r.Get("/expired", h.handleListExpired)
		r.Get("/expiring-soon", h.handleListExpiringSoon)
		r.Get("/good", h.handleListGood)
		r.Get("/donated", h.handleListDonated)
		r.Get("/search", h.handleSearch)
		r.Get("/category/{category}", h.handleByCategory)
		r.Get("/statistics", h.handleStatistics)
		r.Post("/seed", h.handleSeed)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetFood)
			r.Put("/", h.handleUpdateFood)
			r.Delete("/", h.handleDeleteFood)
			r.Post("/donate", h.handleDonateFood)
		})
	})

	return r
}

type foodRequest struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Unit       string `json:"unit"`
	ExpiryDate string `json:"expiry_date"`
	AddedDate  string `json:"added_date,omitempty"`
	Category   string `json:"category"`
}

func (req foodRequest) toInput() (FoodInput, error) {
	input := FoodInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
	}

	if req.ExpiryDate != "" {
		expiry, err := time.Parse(time.DateOnly, req.ExpiryDate)
		if err != nil {
			return FoodInput{}, errors.New("invalid expiry_date, expected YYYY-MM-DD")
		}
		input.ExpiryDate = expiry
	}
	if req.AddedDate != "" {
		added, err := time.Parse(time.DateOnly, req.AddedDate)
		if err != nil {
			return FoodInput{}, errors.New("invalid added_date, expected YYYY-MM-DD")
		}
		input.AddedDate = &added
	}
	return input, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid food ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleAddFood(w http.ResponseWriter, r *http.Request) {
	var req foodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, err := req.toInput()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	food, err := h.service.AddFood(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, food)
}

func (h *Handler) handleGetFood(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	food, err := h.service.GetFood(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, food)
}

func (h *Handler) handleUpdateFood(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req foodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, err := req.toInput()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	food, err := h.service.UpdateFood(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, food)
}

func (h *Handler) handleDeleteFood(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteFood(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDonateFood(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	food, err := h.service.DonateFood(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, food)
}

func (h *Handler) listResponse(w http.ResponseWriter, foods []*Food, err error) {
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if foods == nil {
		foods = []*Food{}
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) handleListActive(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.ActiveFoods(r.Context())
	h.listResponse(w, foods, err)
}

func (h *Handler) handleListExpired(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.ExpiredFoods(r.Context())
	h.listResponse(w, foods, err)
}

func (h *Handler) handleListExpiringSoon(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.ExpiringSoonFoods(r.Context())
	h.listResponse(w, foods, err)
}

func (h *Handler) handleListGood(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.GoodFoods(r.Context())
	h.listResponse(w, foods, err)
}

func (h *Handler) handleListDonated(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.DonatedFoods(r.Context())
	h.listResponse(w, foods, err)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "missing search query", http.StatusBadRequest)
		return
	}

	foods, err := h.service.SearchFoods(r.Context(), query)
	h.listResponse(w, foods, err)
}

func (h *Handler) handleByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	foods, err := h.service.FoodsByCategory(r.Context(), category)
	h.listResponse(w, foods, err)
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleSeed(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SeedSampleData(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
