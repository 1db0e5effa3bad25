package handlers

import (
	"net/http"

	"bookworm/internal/api/httpx"
)

func Root(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, map[string]string{"status": "ok", "service": "bookworm-api"})
}
