package app

import (
	"github.com/gin-gonic/gin"
	"github.com/soursync/core/internal/middleware"
	"github.com/soursync/core/internal/modules/auth"
	"github.com/soursync/core/internal/modules/content/importer"
	"github.com/soursync/core/internal/modules/content/post"
	"github.com/soursync/core/internal/modules/stats/analyze"
	"github.com/soursync/core/internal/modules/waitlist"
	pkgmail "github.com/soursync/core/internal/pkg/mail"
	pkgredis "github.com/soursync/core/internal/pkg/redis"
	"github.com/soursync/core/internal/pkg/response"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(rc *pkgredis.Client) error {
	r := a.router
	db := a.db

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.Use(analyze.Middleware(db))
	r.Use(middleware.OptionalAuth())
	r.Use(middleware.RateLimit(rc.Raw()))

	// Services
	authSvc := auth.NewService(db)
	postSvc := post.NewService(db)
	importSvc := importer.NewService(postSvc, a.cfg.Import.DefaultAuthor, a.logger)
	waitlistSvc := waitlist.NewService(db)
	analyzeSvc := analyze.NewService(db)
	mailer := pkgmail.New(a.cfg.Mail)

	if err := authSvc.EnsureAdmin(a.cfg.Admin, a.logger); err != nil {
		return err
	}

	// Handlers
	authHandler := auth.NewHandler(authSvc)
	postHandler := post.NewHandler(postSvc)
	importHandler := importer.NewHandler(importSvc, db)
	waitlistHandler := waitlist.NewHandler(waitlistSvc, mailer, a.logger, a.cfg.Site.Name, a.cfg.Site.BaseURL)
	analyzeHandler := analyze.NewHandler(analyzeSvc)

	api := r.Group(apiPrefix)

	api.GET("", func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":    "soursync-core",
			"version": "1.0.0",
		})
	})
	api.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"pong": true})
	})

	authHandler.RegisterRoutes(api)
	postHandler.RegisterRoutes(api)
	waitlistHandler.RegisterRoutes(api)

	admin := api.Group("/admin", middleware.Auth())
	authHandler.RegisterAdminRoutes(admin)
	postHandler.RegisterAdminRoutes(admin)
	importHandler.RegisterAdminRoutes(admin)
	waitlistHandler.RegisterAdminRoutes(admin)
	analyzeHandler.RegisterAdminRoutes(admin)

	return nil
}
