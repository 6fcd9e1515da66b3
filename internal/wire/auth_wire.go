package wire

import (
	"product-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/users/register - Create account (public)
	r.Post("/api/users/register", authHandler.Register)

	// POST /api/users/login - Credential login (public)
	r.Post("/api/users/login", authHandler.Login)
}
