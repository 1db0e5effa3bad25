package books

import (
	"errors"
	"log"
	"net/http"

	"bookworm/internal/api/httpx"
	"bookworm/internal/api/middlewares"
	"bookworm/internal/models"
	storebooks "bookworm/internal/store/books"
)

// Delete: DELETE /api/books/{id}. Only the owner may delete; the hosted
// image goes first, by its stored object key. If the image delete fails the
// record is kept and the client sees a 500.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.UserFrom(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := models.BookID(r.PathValue("id"))
	if id == "" {
		httpx.Error(w, http.StatusNotFound, "Book not found")
		return
	}

	book, err := h.Store.GetByID(r.Context(), id)
	if errors.Is(err, storebooks.ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "Book not found")
		return
	}
	if err != nil {
		log.Printf("[books] get failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if book.UserID != caller.ID {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if book.ImageKey != "" {
		if err := h.Images.Delete(r.Context(), book.ImageKey); err != nil {
			log.Printf("[books] image delete failed for %s: %v", book.ID, err)
			httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storebooks.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("[books] delete failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpx.OK(w, map[string]string{"message": "Book deleted successfully"})
}
