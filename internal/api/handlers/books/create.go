package books

import (
	"encoding/json"
	"log"
	"net/http"

	"bookworm/internal/api/httpx"
	"bookworm/internal/api/middlewares"
	"bookworm/internal/models"
)

// Create: POST /api/books. Validates everything before touching the image
// host, so a rejected request leaves no side effects behind.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.UserFrom(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Please provide all fields")
		return
	}
	if req.Title == "" || req.Caption == "" || req.Image == "" || req.Rating == 0 {
		httpx.Error(w, http.StatusBadRequest, "Please provide all fields")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httpx.Error(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	data, contentType, err := decodeImage(req.Image)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Please provide all fields")
		return
	}

	key := objectKey(contentType)
	url, err := h.Images.Upload(r.Context(), key, data, contentType)
	if err != nil {
		log.Printf("[books] image upload failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	book, err := h.Store.Create(r.Context(), models.Book{
		Title:    req.Title,
		Caption:  req.Caption,
		ImageURL: url,
		ImageKey: key,
		Rating:   req.Rating,
		UserID:   caller.ID,
	})
	if err != nil {
		log.Printf("[books] create failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpx.Created(w, toBookResponse(book))
}
