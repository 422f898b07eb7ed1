package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/cvlm/crm-backend/config"
	"github.com/cvlm/crm-backend/internal/api/handlers"
	"github.com/cvlm/crm-backend/internal/api/middleware"
	"github.com/cvlm/crm-backend/internal/api/routes"
	"github.com/cvlm/crm-backend/internal/logger"
	"github.com/cvlm/crm-backend/internal/providers/extractor"
	"github.com/cvlm/crm-backend/internal/repositories"
	mongorepo "github.com/cvlm/crm-backend/internal/repositories/mongo"
	pgrepo "github.com/cvlm/crm-backend/internal/repositories/postgres"
	redisrepo "github.com/cvlm/crm-backend/internal/repositories/redis"
	"github.com/cvlm/crm-backend/internal/services"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()
	ctx := context.Background()

	store := newProfileStore(log)

	collection := services.NewCollection(store, log)
	collection.Load(ctx)

	ext := newExtractor(ctx, log)
	defer ext.Close()

	profileSvc := services.NewProfileService(collection, ext, log)
	referralSvc := services.NewReferralService(collection)
	exportSvc := services.NewExportService(collection)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Prospect: handlers.NewProspectHandler(profileSvc, referralSvc),
		Export:   handlers.NewExportHandler(exportSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("starting crm backend")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func newProfileStore(log *logrus.Logger) repositories.ProfileStore {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "redis"
	}

	switch backend {
	case "redis":
		if err := config.InitRedis(); err != nil {
			log.WithError(err).Fatal("redis init failed")
		}
		log.Info("redis connected")
		return redisrepo.NewProfileStore(config.RedisClient)

	case "postgres":
		if err := config.InitPostgres(); err != nil {
			log.WithError(err).Fatal("postgres init failed")
		}
		store, err := pgrepo.NewProfileStore(config.PostgresDB)
		if err != nil {
			log.WithError(err).Fatal("postgres migration failed")
		}
		log.Info("postgres connected")
		return store

	case "mongo":
		if err := config.InitMongo(); err != nil {
			log.WithError(err).Fatal("mongo init failed")
		}
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "crm"
		}
		log.Info("mongo connected")
		return mongorepo.NewProfileStore(config.MongoClient.Database(dbName))

	default:
		log.WithField("backend", backend).Fatal("unknown STORAGE_BACKEND")
		return nil
	}
}

// newExtractor builds the Vertex Gemini provider. A missing or broken
// configuration does not stop the service; imports fail with the
// configuration error until it is fixed.
func newExtractor(ctx context.Context, log *logrus.Logger) extractor.Extractor {
	ext, err := extractor.NewVertexGemini(
		ctx,
		os.Getenv("VERTEX_PROJECT_ID"),
		os.Getenv("VERTEX_LOCATION"),
		os.Getenv("GEMINI_MODEL"),
		os.Getenv("GEMINI_CREDENTIALS_FILE"),
	)
	if err != nil {
		log.WithError(err).Warn("extraction provider unavailable")
		return extractor.Disabled(err)
	}
	return ext
}
