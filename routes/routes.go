package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/prediction-pool/docs"
	"github.com/Dosada05/prediction-pool/handlers"
	"github.com/Dosada05/prediction-pool/middleware"
	"github.com/Dosada05/prediction-pool/models"
)

// Handlers groups everything SetupRoutes mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Match        *handlers.MatchHandler
	Prediction   *handlers.PredictionHandler
	ExtraBet     *handlers.ExtraBetHandler
	Leaderboard  *handlers.LeaderboardHandler
	Standings    *handlers.StandingsHandler
	Config       *handlers.ConfigHandler
	Notification *handlers.NotificationHandler
	WebSocket    *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, h Handlers, jwtSecret string, allowedOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Get("/ws/pool", h.WebSocket.ServePool)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", h.Match.List)
		r.Get("/{matchID}/breakdown", h.Leaderboard.Breakdown)
	})

	router.Route("/leaderboard", func(r chi.Router) {
		r.Get("/", h.Leaderboard.Get)
		r.Get("/prizes", h.Leaderboard.Prizes)
		r.Get("/history/{username}", h.Leaderboard.History)
	})

	router.Get("/standings/{username}", h.Standings.ForUser)

	router.Route("/me", func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/", h.User.Me)
		r.Get("/standings", h.Standings.Mine)
		r.Get("/predictions", h.Prediction.ListMine)
		r.Put("/predictions/{matchID}", h.Prediction.Submit)
		r.Get("/extra-bets", h.ExtraBet.Mine)
		r.Put("/extra-bets", h.ExtraBet.Save)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.Authorize(models.RoleAdmin))

		r.Post("/matches", h.Match.Create)
		r.Put("/matches/{matchID}/result", h.Match.SetResult)
		r.Delete("/matches/{matchID}/result", h.Match.ClearResult)

		r.Get("/config", h.Config.Get)
		r.Put("/config/rules", h.Config.UpdateRules)
		r.Put("/config/settings", h.Config.UpdateSettings)

		r.Get("/users", h.User.List)
		r.Patch("/users/{username}/paid", h.User.SetPaid)

		r.Post("/leaderboard/export", h.Leaderboard.Export)
		r.Post("/notifications", h.Notification.Send)
	})
}
