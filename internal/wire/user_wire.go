package wire

import (
	"product-catalog/internal/adaptor"
	"product-catalog/internal/usecase"
	"product-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, service *usecase.Service) {
	// Own profile, any authenticated user
	r.Route("/api/users/me", func(r chi.Router) {
		r.Use(middleware.Authenticated(service.Auth))

		r.Get("/", userHandler.GetProfile)    // GET /api/users/me
		r.Put("/", userHandler.UpdateProfile) // PUT /api/users/me
	})

	// Account administration
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.Authenticated(service.Auth))
		r.Use(middleware.RequireAdmin())

		r.Get("/", userHandler.ListUsers)          // GET /api/admin/users
		r.Delete("/{id}", userHandler.DeleteUser)  // DELETE /api/admin/users/{id}
	})
}
