package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"
	gmysql "gorm.io/driver/mysql"

	"jobboard_backend/internal/app/di"
	"jobboard_backend/internal/app/router"
	appadapters "jobboard_backend/internal/feature/applications/adapters"
	apphandler "jobboard_backend/internal/feature/applications/transport/handler"
	appusecase "jobboard_backend/internal/feature/applications/usecase"
	authadapters "jobboard_backend/internal/feature/auth/adapters"
	authhandler "jobboard_backend/internal/feature/auth/transport/handler"
	authusecase "jobboard_backend/internal/feature/auth/usecase"
	jobadapters "jobboard_backend/internal/feature/jobs/adapters"
	jobhandler "jobboard_backend/internal/feature/jobs/transport/handler"
	jobusecase "jobboard_backend/internal/feature/jobs/usecase"
	"jobboard_backend/internal/platform/config"
	"jobboard_backend/internal/platform/db"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/platform/redis"
)

const tokenExpiry = 24 * time.Hour

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	connector := db.NewConnector(gmysql.Open(cfg.DatabaseDSN))
	gormDB, err := connector.Connect()
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}
	defer func() {
		if err := connector.Close(); err != nil {
			log.Println("[ERROR] Failed to close database:", err)
		}
	}()

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := redis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(gormDB)
	jobRepo := di.NewJobRepository(rdb, gormDB)
	appRepo := appadapters.NewApplicationMySQL(gormDB)

	// The uncached repository backs the existence check so a freshly created
	// job is visible to applications immediately.
	jobFinder := jobadapters.NewJobMySQL(gormDB)

	// Usecase
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, tokenExpiry)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	jobUC := jobusecase.NewJobUsecase(jobRepo)
	appUC := appusecase.NewApplicationUsecase(appRepo, jobFinder)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	jobH := jobhandler.NewJobHandler(jobUC)
	appH := apphandler.NewApplicationHandler(appUC)

	r := router.NewRouter(authH, jobH, appH, jwtmw.AdminRequired(cfg.JWTSecret), cfg.AllowedOrigins)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
