package routes

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seguro-calcio/team-manager/handlers"
	"github.com/seguro-calcio/team-manager/middleware"
	"github.com/seguro-calcio/team-manager/models"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Player    *handlers.PlayerHandler
	Match     *handlers.MatchHandler
	Training  *handlers.TrainingHandler
	Callup    *handlers.CallupHandler
	Formation *handlers.FormationHandler
	Stats     *handlers.StatsHandler
	Settings  *handlers.SettingsHandler
	Admin     *handlers.AdminHandler
	WebSocket *handlers.WebSocketHandler
}

// SetupRoutes builds the chi router. Reads are public, mutations require a
// valid token, user management and the bulk reset require the admin role.
func SetupRoutes(h Handlers, jwtSecret string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticated := middleware.Authenticator(jwtSecret)
	adminOnly := middleware.Authorize(models.RoleAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		r.Route("/auth/users", func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Get("/", h.Auth.ListUsers)
			r.Post("/", h.Auth.CreateUser)
			r.Delete("/{username}", h.Auth.DeleteUser)
			r.Put("/{username}/password", h.Auth.ChangePassword)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.Player.List)
			r.Get("/search", h.Player.Search)
			r.Get("/{playerID}", h.Player.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Post("/", h.Player.Create)
				r.Put("/{playerID}", h.Player.Update)
				r.Delete("/{playerID}", h.Player.Delete)
				r.Post("/{playerID}/photo", h.Player.UploadPhoto)
			})
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.Match.List)
			r.Get("/{matchID}", h.Match.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Post("/", h.Match.Create)
				r.Put("/{matchID}", h.Match.Update)
				r.Delete("/{matchID}", h.Match.Delete)
				r.Post("/{matchID}/events", h.Match.AddEvent)
				r.Patch("/{matchID}/events/{eventID}", h.Match.UpdateEvent)
				r.Delete("/{matchID}/events/{eventID}", h.Match.RemoveEvent)
				r.Post("/{matchID}/minutes", h.Match.RecalculateMinutes)
			})
		})

		r.Route("/trainings", func(r chi.Router) {
			r.Get("/", h.Training.List)
			r.Get("/{trainingID}", h.Training.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Post("/", h.Training.Create)
				r.Put("/{trainingID}", h.Training.Update)
				r.Delete("/{trainingID}", h.Training.Delete)
			})
		})

		r.Route("/callups", func(r chi.Router) {
			r.Get("/", h.Callup.List)
			r.Get("/{callupID}", h.Callup.Get)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Post("/", h.Callup.Create)
				r.Put("/{callupID}", h.Callup.Update)
				r.Delete("/{callupID}", h.Callup.Delete)
			})
		})

		r.Route("/formations", func(r chi.Router) {
			r.Get("/latest", h.Formation.Latest)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Post("/", h.Formation.Save)
				r.Put("/{formationID}", h.Formation.Save)
			})
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/players", h.Stats.PlayerStats)
			r.Get("/players/summaries", h.Stats.Summaries)
			r.With(authenticated).Post("/players/apply", h.Stats.Apply)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.Settings.Get)
			r.With(authenticated).Put("/", h.Settings.Update)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticated, adminOnly)
			r.Post("/reset", h.Admin.Reset)
		})
	})

	r.Get("/ws/matches/{matchID}", h.WebSocket.ServeMatch)

	return r
}
