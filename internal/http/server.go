package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"geoconnect-backend-go/internal/config"
	"geoconnect-backend-go/internal/services"
	"geoconnect-backend-go/internal/store"
)

type Server struct {
	Store      store.Store
	Config     config.Config
	Tokens     services.TokenService
	MetricsHub *services.MetricsHub
}

func NewServer(st store.Store, cfg config.Config, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret:    []byte(cfg.JWTSecret),
		Issuer:    cfg.JWTIssuer,
		AccessTTL: time.Duration(cfg.AccessTTLSeconds) * time.Second,
	}
	return &Server{
		Store:      st,
		Config:     cfg,
		Tokens:     tokens,
		MetricsHub: hub,
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
		api.Get("/health", s.Health)
		api.Get("/search", s.SearchContent)

		api.Post("/auth/register", s.Register)
		api.Post("/auth/login", s.Login)

		api.Route("/users/me", func(me chi.Router) {
			me.Use(WithAuth(s.Tokens))
			me.Get("/", s.Me)
			me.Put("/", s.UpdateMe)
		})

		api.Route("/forum", func(forum chi.Router) {
			forum.Get("/categories", s.ForumCategories)
			forum.Get("/posts", s.ForumPosts)
			forum.Get("/posts/{postId}", s.ForumPost)
			forum.Get("/posts/{postId}/replies", s.ForumReplies)
			forum.Group(func(auth chi.Router) {
				auth.Use(WithAuth(s.Tokens))
				auth.Use(RequireCapability(services.CapPostForum))
				auth.Post("/posts", s.CreateForumPost)
				auth.Post("/posts/{postId}/replies", s.CreateForumReply)
			})
		})

		api.Route("/jobs", func(jobs chi.Router) {
			jobs.Get("/", s.Jobs)
			jobs.Get("/{jobId}", s.Job)
			jobs.With(WithAuth(s.Tokens), RequireCapability(services.CapPostJob)).Post("/", s.CreateJob)
		})

		api.Route("/resources", func(resources chi.Router) {
			resources.Get("/", s.Resources)
			resources.Get("/{resourceId}", s.Resource)
			resources.Post("/{resourceId}/download", s.DownloadResource)
			resources.Group(func(auth chi.Router) {
				auth.Use(WithAuth(s.Tokens))
				auth.With(RequireCapability(services.CapUploadResource)).Post("/", s.CreateResource)
				auth.Delete("/{resourceId}", s.DeleteResource)
			})
		})

		api.Route("/events", func(events chi.Router) {
			events.Get("/", s.Events)
			events.Get("/{eventId}", s.Event)
			events.Group(func(auth chi.Router) {
				auth.Use(WithAuth(s.Tokens))
				auth.With(RequireCapability(services.CapCreateEvent)).Post("/", s.CreateEvent)
				auth.With(RequireCapability(services.CapRegisterEvent)).Post("/{eventId}/register", s.RegisterForEvent)
			})
		})

		api.Route("/messages", func(messages chi.Router) {
			messages.Use(WithAuth(s.Tokens))
			messages.Get("/", s.Messages)
			messages.With(RequireCapability(services.CapSendMessage)).Post("/", s.CreateMessage)
			messages.Put("/{messageId}/read", s.MarkMessageRead)
		})

		api.Route("/media", func(media chi.Router) {
			media.Get("/assets/{assetId}/content", s.MediaContent)
			media.With(WithAuth(s.Tokens), RequireCapability(services.CapUploadResource)).
				Post("/uploads/resource", s.UploadResourceFile)
		})

		api.With(WithAuth(s.Tokens)).Get("/metrics/history", s.MetricsHistory)
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
