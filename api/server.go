package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rpupo63/portfolio-backend/web"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(ctx context.Context, database database.Database) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	media, err := newMediaResolver(ctx, c)
	if err != nil {
		return Server{}, err
	}

	router, err := newRouter(database, withConfig(c), withStartupTime(startupTime), withMedia(media))
	if err != nil {
		return Server{}, err
	}

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 30*time.Second),
		WriteTimeout: config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 30*time.Second),
		IdleTimeout:  config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 120*time.Second),
	}

	return Server{server, startupTime}, nil
}

// newMediaResolver presigns S3 URLs when MEDIA_BUCKET is set and otherwise
// serves media below MEDIA_BASE_URL
func newMediaResolver(ctx context.Context, c map[string]string) (services.MediaResolver, error) {
	bucket := config.GetString(c, "MEDIA_BUCKET", "")
	if bucket == "" {
		return services.LocalMedia{BaseURL: config.GetString(c, "MEDIA_BASE_URL", "/media")}, nil
	}

	expires := time.Duration(config.GetInt(c, "MEDIA_PRESIGN_MINUTES", 15)) * time.Minute
	media, err := services.NewS3Media(ctx, bucket, config.GetString(c, "MEDIA_REGION", "us-east-1"), expires)
	if err != nil {
		return nil, fmt.Errorf("configuring media bucket: %w", err)
	}
	log.Info().Str("bucket", bucket).Msg("serving media from S3")
	return media, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	media       services.MediaResolver
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withMedia(media services.MediaResolver) func(*router) {
	return func(r *router) {
		r.media = media
	}
}

func newRouter(database database.Database, opts ...func(*router)) (*chi.Mux, error) {
	router := router{
		startupTime: time.Now(),
		media:       services.LocalMedia{BaseURL: "/media"},
	}
	for _, opt := range opts {
		opt(&router)
	}

	renderer, err := web.NewRenderer(router.media)
	if err != nil {
		return nil, err
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestID)
	chiRouter.Use(middleware.StripSlashes)
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))
	chiRouter.Use(ColoredHTTPLoggingMiddleware)

	handlers := initializeHandlers(database, renderer, router.media, router.startupTime)
	authMiddleware := newAuthMiddleware(config.GetString(router.config, "BACKEND_PASSWORD", ""))

	setupPageRoutes(chiRouter, handlers)
	setupAPIRoutes(chiRouter, handlers)
	setupAdminRoutes(chiRouter, handlers, authMiddleware)

	if root := config.GetString(router.config, "MEDIA_ROOT", ""); root != "" {
		chiRouter.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(root))))
	}

	chiRouter.NotFound(notFoundHandler(handlers.pageHandler))

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
