package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/fabclean/laundry-api/internal/config"
	dbpkg "github.com/fabclean/laundry-api/internal/db"
	"github.com/fabclean/laundry-api/internal/middleware"
	"github.com/fabclean/laundry-api/internal/qr"
	"github.com/fabclean/laundry-api/internal/routes"
	"github.com/fabclean/laundry-api/internal/session"
)

func main() {

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, logger)

	if err := dbpkg.Seed(db, cfg, logger); err != nil {
		logger.WithError(err).Fatal("failed to seed database")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	sessions := session.NewStore(rdb, cfg.AdminSessionTTL)

	qrOpts := []qr.Option{}
	if cfg.QRWebP {
		qrOpts = append(qrOpts, qr.WithWebP(cfg.QRWebPSize))
	}
	if cfg.S3Enabled() {
		qrOpts = append(qrOpts, qr.WithUploader(
			qr.NewS3Uploader(cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket),
		))
	}
	qrGen := qr.NewGenerator(cfg.QRDir, cfg.QRSize, logger, qrOpts...)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		QR:       qrGen,
	})

	logger.WithField("addr", cfg.Addr()).Info("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.WithError(err).Fatal("failed to start server")
	}
}
