package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agendabarber/agenda-api/internal/cache"
	"github.com/agendabarber/agenda-api/internal/config"
	dbpkg "github.com/agendabarber/agenda-api/internal/db"
	"github.com/agendabarber/agenda-api/internal/logging"
	"github.com/agendabarber/agenda-api/internal/metrics"
	"github.com/agendabarber/agenda-api/internal/middleware"
	"github.com/agendabarber/agenda-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	db := dbpkg.NewDB(cfg)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("availability cache enabled")
	}

	metrics.Register()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, redisClient, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
