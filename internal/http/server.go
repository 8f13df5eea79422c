package httpapi

import (
	"net/http"
	"time"

	"viralalchemy-backend-go/internal/config"
	"viralalchemy-backend-go/internal/llm"
	"viralalchemy-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB       *sqlx.DB
	Config   config.Config
	Tokens   services.TokenService
	Users    *services.UserRegistry
	Assets   *services.AssetStore
	Settings *services.SettingsStore
	Workflow *services.MediaWorkflow
	LLM      llm.Client
	Hub      *services.EventHub
}

func NewServer(db *sqlx.DB, cfg config.Config, users *services.UserRegistry, assets *services.AssetStore,
	settings *services.SettingsStore, workflow *services.MediaWorkflow, client llm.Client, hub *services.EventHub) *Server {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	return &Server{
		DB:       db,
		Config:   cfg,
		Tokens:   tokens,
		Users:    users,
		Assets:   assets,
		Settings: settings,
		Workflow: workflow,
		LLM:      client,
		Hub:      hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", s.Register)
		api.Post("/auth/login", s.Login)
		api.Post("/auth/refresh", s.Refresh)
		api.With(WithAuth(s.Tokens)).Post("/auth/logout", s.Logout)

		api.With(WithAuth(s.Tokens)).Get("/me", s.Me)

		api.With(WithAuth(s.Tokens)).Post("/analyze", s.Analyze)
		api.With(WithAuth(s.Tokens)).Post("/generate", s.Generate)

		api.Route("/persona", func(persona chi.Router) {
			persona.Get("/options", s.PersonaOptions)
			persona.Post("/derive", s.PersonaDerive)
		})

		api.Route("/assets", func(assets chi.Router) {
			assets.Use(WithAuth(s.Tokens))
			assets.Get("/", s.ListAssets)
			assets.Post("/", s.CreateAsset)
			assets.Get("/{assetId}", s.GetAsset)
			assets.Put("/{assetId}", s.UpdateAsset)
			assets.Delete("/{assetId}", s.DeleteAsset)
			assets.Get("/{assetId}/export", s.ExportAsset)
			assets.Post("/{assetId}/media", s.GenerateMedia)
			assets.Delete("/{assetId}/media", s.DiscardMedia)
		})

		api.Route("/settings/model", func(settings chi.Router) {
			settings.Use(WithAuth(s.Tokens))
			settings.Get("/", s.GetModelSettings)
			settings.Put("/", s.UpdateModelSettings)
			settings.Post("/reset", s.ResetModelSettings)
		})

		api.Route("/billing", func(billing chi.Router) {
			billing.Get("/plans", s.ListPlans)
			billing.With(WithAuth(s.Tokens)).Post("/upgrade", s.Upgrade)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(WithAuth(s.Tokens))
			admin.Use(RequireRole("ADMIN"))
			admin.Get("/metrics/history", s.MetricsHistory)
		})

		api.Get("/media/assets/{fileId}/content", s.MediaContent)
	})

	r.Get("/ws/events", s.EventsSocket)
	return r
}
