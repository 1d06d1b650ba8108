// internal/recipes/handler.go
package recipes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", h.handleListRecipes)
		r.Get("/suggestions", h.handleSuggestions)
		r.Get("/suggestions/expiring", h.handleExpiringSuggestions)
	})

	return r
}

func writeRecipes(w http.ResponseWriter, recipes []Recipe) {
	if recipes == nil {
		recipes = []Recipe{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipes)
}

func (h *Handler) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	writeRecipes(w, h.service.AllRecipes(r.Context()))
}

// handleSuggestions answers one of three query shapes:
// ?food=Milk, ?foods=Milk,Bread or ?category=dairy.
func (h *Handler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if food := query.Get("food"); food != "" {
		writeRecipes(w, h.service.SuggestFor(r.Context(), food))
		return
	}

	if foods := query.Get("foods"); foods != "" {
		names := strings.Split(foods, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		writeRecipes(w, h.service.SuggestForMultiple(r.Context(), names))
		return
	}

	if category := query.Get("category"); category != "" {
		writeRecipes(w, h.service.SuggestForCategory(r.Context(), category))
		return
	}

	http.Error(w, "missing food, foods or category query parameter", http.StatusBadRequest)
}

func (h *Handler) handleExpiringSuggestions(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.SuggestForExpiring(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeRecipes(w, recipes)
}
