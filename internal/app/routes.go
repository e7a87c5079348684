package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/middleware"
	"github.com/reignite/reignite/internal/pkg"
)

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules []Module
	DB      *gorm.DB
	JWT     jwt.Service

	// UploadDir and UploadBaseURL expose stored images over HTTP when
	// UploadBaseURL is a local path. An absolute URL means a CDN serves them.
	UploadDir     string
	UploadBaseURL string
}

// RegisterRoutes registers all application routes on the given gin.Engine.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if deps.JWT == nil {
		return errors.New("jwt service is required")
	}
	if len(deps.Modules) == 0 {
		return errors.New("at least one module is required")
	}

	r.GET("/health", healthHandler(deps.DB))

	if strings.HasPrefix(deps.UploadBaseURL, "/") && deps.UploadDir != "" {
		r.Static(deps.UploadBaseURL, deps.UploadDir)
	}

	// Three route tiers: anonymous, signed-in, admin.
	public := r.Group("/api/v1")

	authed := r.Group("/api/v1")
	authed.Use(middleware.Auth(deps.JWT))

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.Auth(deps.JWT), middleware.RequireRole(domain.RoleAdmin))

	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(public, authed, admin)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, pkg.Response{Code: http.StatusNotFound, Message: "not found"})
	})

	return nil
}

// healthHandler returns a handler that pings the database and reports status.
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		status := "ok"
		code := http.StatusOK

		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"components": gin.H{
					"database": "error",
				},
			})
			return
		}

		sqlDB, err := db.DB()
		if err != nil {
			dbStatus, status, code = "error", "degraded", http.StatusServiceUnavailable
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			defer cancel()
			if err := sqlDB.PingContext(ctx); err != nil {
				dbStatus, status, code = "error", "degraded", http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{
			"status": status,
			"components": gin.H{
				"database": dbStatus,
			},
		})
	}
}
