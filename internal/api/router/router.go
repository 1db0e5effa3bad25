package router

import (
	"database/sql"
	"net/http"

	"bookworm/internal/api/handlers"
	bookshandlers "bookworm/internal/api/handlers/books"
	mw "bookworm/internal/api/middlewares"
	"bookworm/internal/auth"
	"bookworm/internal/storage/images"
	storebooks "bookworm/internal/store/books"
	storeusers "bookworm/internal/store/users"

	"github.com/redis/go-redis/v9"
)

func New(db *sql.DB, rdb *redis.Client, img *images.Client) http.Handler {
	userStore := storeusers.New(db)
	bookStore := storebooks.New(db)

	authH := auth.New(userStore)
	booksH := bookshandlers.New(bookStore, img)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", handlers.Root)

	// Auth endpoints sit behind the per-IP login rate limit. A typed nil
	// inside the interface would defeat its fail-open check, so convert
	// only when a client exists.
	var limiter mw.AttemptCounter
	if rdb != nil {
		limiter = rdb
	}
	mux.Handle("POST /api/auth/register", mw.LoginRateLimit(limiter, http.HandlerFunc(authH.Register)))
	mux.Handle("POST /api/auth/login", mw.LoginRateLimit(limiter, http.HandlerFunc(authH.Login)))

	protected := func(h http.HandlerFunc) http.Handler {
		return mw.RequireAuth(userStore, h)
	}

	mux.Handle("POST /api/books", protected(booksH.Create))
	mux.Handle("GET /api/books", protected(booksH.List))
	mux.Handle("GET /api/books/{id}", protected(booksH.ListMine))
	mux.Handle("DELETE /api/books/{id}", protected(booksH.Delete))

	return mux
}
