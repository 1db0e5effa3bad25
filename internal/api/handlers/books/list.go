package books

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"bookworm/internal/api/httpx"
	"bookworm/internal/api/middlewares"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// List: GET /api/books?page&limit. Paginated, newest first, owner joined in.
// page/limit are taken as given beyond defaulting; there is no upper cap.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := parseIntOr(r.URL.Query().Get("page"), defaultPage)
	limit := parseIntOr(r.URL.Query().Get("limit"), defaultLimit)
	offset := (page - 1) * limit

	books, total, err := h.Store.List(r.Context(), limit, offset)
	if err != nil {
		log.Printf("[books] list failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	listed := make([]ListedBook, len(books))
	for i, bw := range books {
		listed[i] = toListedBook(bw)
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	httpx.OK(w, listResponse{
		Books:       listed,
		CurrentPage: page,
		TotalBooks:  total,
		TotalPages:  totalPages,
	})
}

// ListMine: GET /api/books/{id}. The path parameter is accepted but the
// result is always scoped to the authenticated caller, unpaginated,
// newest first.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.UserFrom(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	mine, err := h.Store.ListByOwner(r.Context(), caller.ID)
	if err != nil {
		log.Printf("[books] list own failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	out := make([]BookResponse, len(mine))
	for i, b := range mine {
		out[i] = toBookResponse(b)
	}
	httpx.OK(w, out)
}

func parseIntOr(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
