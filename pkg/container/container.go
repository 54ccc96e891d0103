package container

import (
	"context"
	"fmt"
	"time"

	"landing-cms-backend/internal/config"
	contenthandler "landing-cms-backend/internal/domains/content/handler"
	contentrepo "landing-cms-backend/internal/domains/content/repository"
	contentservice "landing-cms-backend/internal/domains/content/service"
	userhandler "landing-cms-backend/internal/domains/user/handler"
	userrepo "landing-cms-backend/internal/domains/user/repository"
	userservice "landing-cms-backend/internal/domains/user/service"
	"landing-cms-backend/internal/infrastructure/cache"
	"landing-cms-backend/internal/infrastructure/database"
	"landing-cms-backend/pkg/jwt"
	"landing-cms-backend/pkg/limiter"
	"landing-cms-backend/pkg/logger"
)

// Container wires configuration, infrastructure and the domain layers
// together. Everything the router needs hangs off this struct.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Redis *cache.RedisClient

	JWTManager   *jwt.Manager
	LoginLimiter *limiter.LoginLimiter

	ContentHandler *contenthandler.ContentHandler
	UserHandler    *userhandler.UserHandler
}

// NewContainer builds the full dependency graph. Postgres is required,
// redis is optional: without it login throttling is simply disabled.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.EnsureSchema(ctx, db.Pool, cfg.Admin.Username, cfg.Admin.DefaultPassword); err != nil {
		db.Pool.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	var redisClient *cache.RedisClient
	var loginLimiter *limiter.LoginLimiter

	redisClient = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		logger.Error("redis unavailable, login throttling disabled", err)
		_ = redisClient.Close()
		redisClient = nil
	} else {
		loginLimiter = limiter.NewLoginLimiter(
			redisClient.Client,
			cfg.Redis.MaxLoginAttempts,
			time.Duration(cfg.Redis.LoginWindowMinutes)*time.Minute,
		)
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	contentStore := contentrepo.NewPostgresStore(db.Pool)
	contentSvc := contentservice.NewContentService(contentStore)
	contentHdl := contenthandler.NewContentHandler(contentSvc)

	userStore := userrepo.NewPostgresStore(db.Pool)
	userSvc := userservice.NewUserService(userStore, jwtManager, loginLimiter)
	userHdl := userhandler.NewUserHandler(userSvc)

	return &Container{
		Config:         cfg,
		DB:             db,
		Redis:          redisClient,
		JWTManager:     jwtManager,
		LoginLimiter:   loginLimiter,
		ContentHandler: contentHdl,
		UserHandler:    userHdl,
	}, nil
}

// Cleanup releases infrastructure connections.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("failed to close redis connection", err)
		}
	}
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}
}
