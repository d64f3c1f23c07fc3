// File: firebase-config/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"firebase-config/config"
	"firebase-config/handlers"
	"firebase-config/middleware"
	"firebase-config/routes"
	"firebase-config/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	fb := config.AppConfig.Firebase
	logger.Info("main: firebase web config loaded", zap.String("projectId", fb.ProjectID))

	// Building the app loads the service account, so a bad key fails here
	// rather than being served as healthy. Nothing else uses the app yet.
	firebaseReady := false
	if path := config.AppConfig.FirebaseServiceAccountKeyPath; path != "" {
		if _, err := utils.NewFirebaseApp(context.Background(), fb, path); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		firebaseReady = true
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(config.AppConfig.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	configHandler := handlers.NewConfigHandler(fb, logger)
	handlerBundle := &handlers.HandlerBundle{
		GetConfigScriptHandler: configHandler.GetConfigScriptHandler,
		GetConfigJSONHandler:   configHandler.GetConfigJSONHandler,
		HealthHandler:          handlers.HealthHandler(firebaseReady),
	}
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
