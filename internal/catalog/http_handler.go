package catalog

import (
	"net/http"

	"bookstore/internal/httpx"
	"bookstore/internal/novel"
)

type HTTPHandler struct {
	catalog *Catalog
}

func NewHTTPHandler(c *Catalog) *HTTPHandler {
	return &HTTPHandler{catalog: c}
}

// ListNovels handles GET /novels
// @Summary List novels
// @Description All novels in catalog order, optionally only those whose title has exactly title_length characters
// @Param title_length query int false "Exact title length"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /novels [get]
func (h *HTTPHandler) ListNovels(w http.ResponseWriter, r *http.Request) {
	var novels []novel.Novel
	if raw := r.URL.Query().Get("title_length"); raw != "" {
		length, ok := httpx.IntParam(w, r, "title_length", raw)
		if !ok {
			return
		}
		novels = h.catalog.WithTitleLength(length)
	} else {
		novels = h.catalog.Entries()
	}

	httpx.JSONSuccess(w, r, novels, map[string]interface{}{
		"catalog": h.catalog.Name(),
		"total":   len(novels),
	})
}

// Oldest handles GET /novels/oldest
// @Summary Oldest novel
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /novels/oldest [get]
func (h *HTTPHandler) Oldest(w http.ResponseWriter, r *http.Request) {
	oldest, ok := h.catalog.Oldest()
	if !ok {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Catalog is empty", nil)
		return
	}
	httpx.JSONSuccess(w, r, oldest, nil)
}

// ListTitles handles GET /titles
// @Summary List titles
// @Description Titles in catalog order. contains filters case-insensitively, sort=alpha sorts case-insensitively, upper=true upper-cases the result of both.
// @Param contains query string false "Substring to look for"
// @Param sort query string false "alpha"
// @Param upper query bool false "Upper-case the titles"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /titles [get]
func (h *HTTPHandler) ListTitles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var titles []string
	switch query.Get("sort") {
	case "alpha":
		titles = h.catalog.TitlesAlphabetical()
	case "":
		titles = h.catalog.titles()
	default:
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_PARAMETER", "sort must be alpha", nil)
		return
	}

	if contains := query.Get("contains"); contains != "" {
		titles = intersect(titles, h.catalog.TitlesContaining(contains))
	}
	if query.Get("upper") == "true" {
		titles = upperCase(titles)
	}

	httpx.JSONSuccess(w, r, titles, map[string]interface{}{"total": len(titles)})
}

// LongestTitle handles GET /titles/longest
// @Summary Longest title
// @Success 200 {object} httpx.SuccessResponse
// @Router /titles/longest [get]
func (h *HTTPHandler) LongestTitle(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, map[string]string{"title": h.catalog.LongestTitle()}, nil)
}

// CountTitles handles GET /titles/count
// @Summary Count titles containing a word
// @Param word query string false "Word, matched case-insensitively"
// @Success 200 {object} httpx.SuccessResponse
// @Router /titles/count [get]
func (h *HTTPHandler) CountTitles(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	httpx.JSONSuccess(w, r, map[string]interface{}{
		"word":  word,
		"count": h.catalog.CountTitlesContaining(word),
	}, nil)
}

// TitlesInDecade handles GET /titles/decade/{start}
// @Summary Titles published in [start, start+9]
// @Param start path int true "First year of the decade"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /titles/decade/{start} [get]
func (h *HTTPHandler) TitlesInDecade(w http.ResponseWriter, r *http.Request) {
	start, ok := httpx.IntParam(w, r, "start", r.PathValue("start"))
	if !ok {
		return
	}
	titles := h.catalog.TitlesInDecade(start)
	httpx.JSONSuccess(w, r, titles, map[string]interface{}{"total": len(titles)})
}

// PublishedIn handles GET /years/{year}
// @Summary Whether a novel was published in exactly this year
// @Param year path int true "Year between 1 and 2026"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /years/{year} [get]
func (h *HTTPHandler) PublishedIn(w http.ResponseWriter, r *http.Request) {
	year, ok := httpx.IntParam(w, r, "year", r.PathValue("year"))
	if !ok {
		return
	}
	published, err := h.catalog.HasBookPublishedIn(year)
	if err != nil {
		httpx.JSONFromError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]interface{}{
		"year":      year,
		"published": published,
	}, nil)
}

// PercentPublishedBetween handles GET /stats/published-between
// @Summary Percentage of novels published in [first, last]
// @Param first query int true "First year"
// @Param last query int true "Last year"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /stats/published-between [get]
func (h *HTTPHandler) PercentPublishedBetween(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	first, ok := httpx.IntParam(w, r, "first", query.Get("first"))
	if !ok {
		return
	}
	last, ok := httpx.IntParam(w, r, "last", query.Get("last"))
	if !ok {
		return
	}

	percent, err := h.catalog.PercentPublishedBetween(first, last)
	if err != nil {
		httpx.JSONFromError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]interface{}{
		"first":   first,
		"last":    last,
		"percent": percent,
	}, nil)
}

// intersect keeps the elements of ordered that also occur in subset, in the
// order of ordered.
func intersect(ordered, subset []string) []string {
	keep := make(map[string]int, len(subset))
	for _, s := range subset {
		keep[s]++
	}
	out := []string{}
	for _, s := range ordered {
		if keep[s] > 0 {
			keep[s]--
			out = append(out, s)
		}
	}
	return out
}
