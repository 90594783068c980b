package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"streampick/api"
	"streampick/config"
	"streampick/handlers"
	"streampick/services/discovery"
	"streampick/services/genres"
	"streampick/services/geocode"
	"streampick/services/tmdb"
	"streampick/utils"
)

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	cfgManager, err := config.NewManager(dataDir)
	if err != nil {
		log.Fatalf("[main] config: %v", err)
	}
	settings := cfgManager.Settings()

	if settings.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   settings.LogFile,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}))
	}
	if settings.TMDBToken == "" {
		log.Printf("[main] WARNING: TMDB bearer token not configured; proxy will answer with configuration errors")
	}

	tmdbClient := tmdb.NewClient(settings.TMDBBaseURL, settings.TMDBToken, nil, settings.CacheDir, settings.CacheTTLHours)
	genreService := genres.NewService(tmdbClient, genres.DefaultTables(), time.Duration(settings.CacheTTLHours)*time.Hour)
	discoveryService := discovery.NewService(tmdbClient, genreService)
	geocodeClient := geocode.NewClient(settings.GeocodeBaseURL, nil)

	proxyHandler := handlers.NewProxyHandler(tmdbClient)
	geocodeHandler := handlers.NewGeocodeHandler(geocodeClient)
	genresHandler := handlers.NewGenresHandler(genreService)
	recsHandler := handlers.NewRecommendationsHandler(discoveryService)
	versionHandler := handlers.NewVersionHandler()

	router := utils.NewRouter(settings.AllowedOrigins)
	limiter := api.NewIPRateLimiter(rate.Every(time.Second), 20)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(limiter.Middleware())
	apiRouter.HandleFunc("/genres", genresHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/recommendations", recsHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/geocode", geocodeHandler.Resolve).Methods(http.MethodPost, http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch)
	apiRouter.HandleFunc("/version", versionHandler.GetVersion).Methods(http.MethodGet)
	apiRouter.HandleFunc("/tmdb/{path:.*}", proxyHandler.Proxy).Methods(http.MethodGet)

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(settings.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[main] listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown: %v", err)
	}
}
