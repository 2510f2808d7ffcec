package shop

import (
	"net/http"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	view *View
}

func NewHTTPHandler(v *View) *HTTPHandler {
	return &HTTPHandler{view: v}
}

// Titles handles GET /shop/titles
// @Summary Distinct titles, unordered
// @Success 200 {object} httpx.SuccessResponse
// @Router /shop/titles [get]
func (h *HTTPHandler) Titles(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.view.Titles(), map[string]interface{}{"total": h.view.Len()})
}

// Sorted handles GET /shop/sorted
// @Summary Novels whose title lacks the excluded substring, sorted by title
// @Success 200 {object} httpx.SuccessResponse
// @Router /shop/sorted [get]
func (h *HTTPHandler) Sorted(w http.ResponseWriter, r *http.Request) {
	entries := h.view.FilteredSortedEntries()
	httpx.JSONSuccess(w, r, entries, map[string]interface{}{
		"total":   len(entries),
		"exclude": h.view.exclude,
	})
}

// Collisions handles GET /shop/collisions
// @Summary Titles whose earlier entries were replaced by a later duplicate
// @Success 200 {object} httpx.SuccessResponse
// @Router /shop/collisions [get]
func (h *HTTPHandler) Collisions(w http.ResponseWriter, r *http.Request) {
	collisions := h.view.Collisions()
	httpx.JSONSuccess(w, r, collisions, map[string]interface{}{"total": len(collisions)})
}
