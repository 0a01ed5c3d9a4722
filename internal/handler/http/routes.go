package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover, withCORS)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip, h.withBodyLimit)
		r.NotFound(h.apiNotFound)
		r.MethodNotAllowed(h.apiNotFound)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", h.listRecipes)
			r.Get("/{id}", h.getRecipe)
			r.Post("/{id}/reviews", h.addReview)
			r.Post("/{id}/rate", h.rateRecipe)

			// admin only
			r.Group(func(r chi.Router) {
				r.Use(h.adminOnly)
				r.Post("/", h.createRecipe)
				r.Put("/{id}", h.updateRecipe)
				r.Delete("/{id}", h.deleteRecipe)
			})
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listFavorites)
			r.Get("/ids", h.listFavoriteIDs)
			r.Post("/{recipeId}", h.toggleFavorite)
		})

		r.Post("/contact", h.sendContactMessage)
		r.With(h.adminOnly).Post("/upload", h.upload)

		r.Get("/version", h.getServerVersion)
	})

	router.Get("/health", h.health)
	router.Handle("/uploads/*", h.uploadsHandler())

	router.NotFound(h.frontend)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
