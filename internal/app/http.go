package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/NgChau9803/RG-Ecom-BE/internal/auth/handler"
	"github.com/NgChau9803/RG-Ecom-BE/internal/auth/provider"
	"github.com/NgChau9803/RG-Ecom-BE/internal/auth/provider/google"
	"github.com/NgChau9803/RG-Ecom-BE/internal/auth/reconcile"
	"github.com/NgChau9803/RG-Ecom-BE/internal/auth/token"
	"github.com/NgChau9803/RG-Ecom-BE/internal/authstate"
	"github.com/NgChau9803/RG-Ecom-BE/internal/config"
	"github.com/NgChau9803/RG-Ecom-BE/internal/middleware"
	"github.com/NgChau9803/RG-Ecom-BE/internal/store"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func(context.Context) error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	stateStore := authstate.NewRedisStore(infra.Redis.Client)
	users := store.NewUserRepository(infra.Store)
	reconciler := reconcile.New(users)

	issuer, err := token.NewIssuer(cfg.JWTSecret)
	if err != nil {
		return nil, nil, err
	}

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(googleProvider)

	authHandler := handler.NewHandler(
		registry,
		stateStore,
		reconciler,
		issuer,
		users,
		cfg.FrontendURL,
	)

	authMiddleware := middleware.NewAuthMiddleware(issuer)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	authHandler.RegisterRoutes(router, authMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	cleanup := func(shutdownCtx context.Context) error {
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.Store.Close(shutdownCtx)
	}

	return router, cleanup, nil
}
