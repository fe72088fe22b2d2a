package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hirebridge/hirebridge/config"
	"github.com/hirebridge/hirebridge/internal/api/handlers"
	"github.com/hirebridge/hirebridge/internal/api/middleware"
	"github.com/hirebridge/hirebridge/internal/api/routes"
	"github.com/hirebridge/hirebridge/internal/cache"
	"github.com/hirebridge/hirebridge/internal/logger"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
	"github.com/hirebridge/hirebridge/internal/services"
	"github.com/hirebridge/hirebridge/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.MigratePostgres(config.PostgresDB); err != nil {
		log.Fatalf("PostgreSQL migration error: %v", err)
	}
	log.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	log.Info("Redis connected")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	ttl := 24 * time.Hour
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid JWT_TTL: %v", err)
		}
		ttl = parsed
	}

	// Resume uploads are optional; without a bucket the endpoint reports the
	// uploader as unconfigured.
	var uploader storage.Uploader
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		gcs, err := storage.NewGCSUploader(context.Background(), bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer gcs.Close()
		uploader = gcs
		log.Info("GCS uploader ready")
	}

	db := config.PostgresDB
	rc := cache.NewRedisCache(config.RedisClient)

	users := pgrepo.NewUserRepo(db)
	seekers := pgrepo.NewSeekerProfileRepo(db)
	providers := pgrepo.NewProviderProfileRepo(db)
	jobs := pgrepo.NewJobRepo(db)
	applications := pgrepo.NewApplicationRepo(db)

	authSvc := services.NewAuthService(users, []byte(secret), ttl)
	profileSvc := services.NewProfileService(users, seekers, providers)
	jobSvc := services.NewJobService(jobs, rc)
	applicationSvc := services.NewApplicationService(applications, jobs, rc)
	dashboardSvc := services.NewDashboardService(jobs, applications, seekers, rc)
	resumeSvc := services.NewResumeService(seekers, uploader, rc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:        handlers.NewAuthHandler(authSvc),
		Job:         handlers.NewJobHandler(jobSvc),
		Application: handlers.NewApplicationHandler(applicationSvc),
		Profile:     handlers.NewProfileHandler(profileSvc),
		Resume:      handlers.NewResumeHandler(resumeSvc),
		Dashboard:   handlers.NewDashboardHandler(dashboardSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
