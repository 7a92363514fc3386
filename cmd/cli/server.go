package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/advisorlabs/course-advisor/internal/api"
	"github.com/advisorlabs/course-advisor/internal/api/handlers"
	"github.com/advisorlabs/course-advisor/internal/catalog"
	"github.com/advisorlabs/course-advisor/internal/config"
	"github.com/advisorlabs/course-advisor/internal/ml"
	"github.com/advisorlabs/course-advisor/internal/services"
	"github.com/advisorlabs/course-advisor/pkg/logger"
)

// verifyPortAvailable checks if the given port is available for use
func verifyPortAvailable(host string, port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, portNum))
	if err != nil {
		return fmt.Errorf("port %s is not available: %w", port, err)
	}
	ln.Close()
	return nil
}

func RunServer(configPath string) {
	log := logger.Get()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("Failed to load config")
	}

	// The catalog and model are the two startup artifacts; missing either
	// is fatal and the server must not serve inference requests.
	store, err := catalog.Load(cfg.Advisor.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).
			Str("path", cfg.Advisor.CatalogPath).
			Msg("Failed to load course catalog")
	}
	log.Info().
		Str("path", cfg.Advisor.CatalogPath).
		Int("courses", store.Len()).
		Msg("Course catalog loaded")

	model, err := ml.LoadModel(cfg.Advisor.ModelPath)
	if err != nil {
		log.Fatal().Err(err).
			Str("path", cfg.Advisor.ModelPath).
			Msg("Failed to load model artifact - run `course-advisor train` first")
	}
	log.Info().
		Str("path", cfg.Advisor.ModelPath).
		Strs("classes", model.Classifier.Classes).
		Time("trained_at", model.TrainedAt).
		Msg("Model artifact loaded")

	advisorService := services.NewAdvisorService(model, store)
	advisorHandler := handlers.NewAdvisorHandler(advisorService)

	router := api.NewRouter(advisorHandler, cfg.Server.Endpoint)

	if err := verifyPortAvailable(cfg.Server.Host, cfg.Server.Port); err != nil {
		log.Fatal().
			Err(err).
			Str("host", cfg.Server.Host).
			Str("port", cfg.Server.Port).
			Msg("Server port is not available")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Info().
			Str("address", server.Addr).
			Str("endpoint", cfg.Server.Endpoint).
			Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-stopChan
	log.Info().Msg("Shutdown signal received, gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
		return
	}
	log.Info().Msg("Server stopped")
}
