package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appaccount "github.com/oksasatya/go-account-service/internal/application"
	"github.com/oksasatya/go-account-service/internal/container"
	handlers "github.com/oksasatya/go-account-service/internal/interface/http"
	"github.com/oksasatya/go-account-service/internal/interface/middleware"
	"github.com/oksasatya/go-account-service/internal/router/modules"
)

type AccountModuleDeps struct {
	Service *appaccount.Service
	Handler *handlers.AccountHandler
	Health  *handlers.HealthHandler
}

func buildAccountDeps(c *container.Container) AccountModuleDeps {
	service := appaccount.NewService(c.Accounts, c.Hasher, c.Logger)

	return AccountModuleDeps{
		Service: service,
		Handler: handlers.NewAccountHandler(service, c.Logger),
		Health:  handlers.NewHealthHandler(service, c.Logger),
	}
}

// InitModules builds every module from the container and adds it to the registry.
// Call once during startup.
func InitModules(r *Registry, c *container.Container) {
	deps := buildAccountDeps(c)
	r.Add(modules.NewAccountModule(deps.Handler))
	r.Add(modules.NewHealthModule(deps.Health))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

// NewEngine returns a gin engine with global middleware and every module registered
func NewEngine(c *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	if c.Config.HTTPLogEnabled {
		r.Use(middleware.AccessLog(c.Logger))
	}
	r.Use(cors.New(corsConfig(c.Config.CORSOrigins())))

	reg := NewRegistry(r, "")
	InitModules(reg, c)
	reg.RegisterAll()
	return r
}

// corsConfig allows every origin when none are configured
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
