// Package rest
package rest

import (
	"net/http"

	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/transport/rest/middleware"
)

type RouterDeps struct {
	Auth    *AuthHandler
	Product *ProductHandler

	AuthService domain.AuthService
}

func NewRouter(cfg *config.Config, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.CORS(cfg))

	userStack := middleware.New()
	userStack.Use(middleware.Auth(deps.AuthService))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /register", deps.Auth.Register)
	mux.HandleFunc("POST /token", deps.Auth.Token)

	mux.Handle("POST /logout", userStack.Then(http.HandlerFunc(deps.Auth.Logout)))
	mux.Handle("GET /me", userStack.Then(http.HandlerFunc(deps.Auth.Me)))

	mux.Handle("POST /create-product", userStack.Then(http.HandlerFunc(deps.Product.Store)))

	return globalMw.Apply(mux)
}
