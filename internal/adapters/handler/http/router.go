package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func NewHandler(voteHandler *VoteHandler, authHandler *AuthHandler, userHandler *UserHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/google", authHandler.GoogleLogin)
		})

		r.Route("/votes", func(r chi.Router) {
			r.Get("/top-restaurants", voteHandler.TopRestaurants)

			r.Group(func(r chi.Router) {
				r.Use(AuthMiddleware)
				r.Post("/", voteHandler.CastVote)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(AuthMiddleware)
			r.Get("/me", userHandler.GetMe)
		})
	})

	return r
}
