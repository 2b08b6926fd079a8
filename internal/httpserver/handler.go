package httpserver

import (
	"context"
	"fmt"

	"spyglass-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	if err := srv.setupSessionDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("session domain: %w", err)
	}

	historyUC, err := srv.setupHistoryDomain(ctx, r, mw)
	if err != nil {
		return fmt.Errorf("history domain: %w", err)
	}

	if err := srv.setupAnalysisDomain(ctx, r, mw, historyUC); err != nil {
		return fmt.Errorf("analysis domain: %w", err)
	}

	if err := srv.setupMediaDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("media domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig()
	if srv.environment != "production" {
		corsConfig.AllowedOrigins = append(corsConfig.AllowedOrigins, "*")
	}
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}

	srv.gin.Use(mw.Locale())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
