package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sagarhutagi/ai-code-doctor/internal/api"
	"github.com/sagarhutagi/ai-code-doctor/internal/api/middleware"
	"github.com/sagarhutagi/ai-code-doctor/internal/metrics"
	"github.com/sagarhutagi/ai-code-doctor/internal/setup"
	"github.com/sagarhutagi/ai-code-doctor/internal/setup/logger"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "AI Code Doctor API",
			Description: "Ask a local model questions about an uploaded code file",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Liveness"}},
		{TagProps: spec.TagProps{Name: "models", Description: "Installed models"}},
		{TagProps: spec.TagProps{Name: "actions", Description: "Preset questions"}},
		{TagProps: spec.TagProps{Name: "ask", Description: "Code questions"}},
	}
}

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := setup.LoadConfig()
	appLogger := logger.New(cfg.LogLevel)

	deps, err := setup.Wire(cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, deps.Handler)

	openAPIConfig := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/apidocs.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(openAPIConfig))

	container.Handle("/metrics", metrics.Handler())

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().
		Str("address", addr).
		Str("ollama_host", cfg.OllamaHost).
		Str("default_model", cfg.DefaultModel).
		Msg("Starting Code Doctor API")

	server := http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(container),
		// The write timeout must outlast one full blocking generation.
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.GenerateTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
