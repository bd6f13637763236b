package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/nimblelabs/inquiry-api/config"
	"github.com/nimblelabs/inquiry-api/internal/api/handlers"
	"github.com/nimblelabs/inquiry-api/internal/api/middleware"
	"github.com/nimblelabs/inquiry-api/internal/api/routes"
	"github.com/nimblelabs/inquiry-api/internal/logger"
	"github.com/nimblelabs/inquiry-api/internal/mailer"
	mongorepo "github.com/nimblelabs/inquiry-api/internal/repositories/mongo"
	"github.com/nimblelabs/inquiry-api/internal/services"
	"github.com/nimblelabs/inquiry-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)

	// Persistence is optional: a missing URI or a failed connection disables
	// the repository, it never stops the server.
	repo := mongorepo.NewDisabledRepo()
	if client, err := config.ConnectMongo(cfg.MongoURI); err != nil {
		l.WithError(err).Warn("mongodb unavailable, persistence disabled")
	} else {
		l.Info("mongodb connected")
		repo = mongorepo.NewSubmissionRepo(client.Database(cfg.MongoDB))
	}

	// Mail relay is optional in the same way.
	notifier := mailer.NewDisabledNotifier()
	if cfg.MailConfigured() {
		notifier = mailer.NewSMTPNotifier(mailer.SMTPConfig{
			Host:   cfg.SMTPHost,
			Port:   cfg.SMTPPort,
			Secure: cfg.SMTPSecure,
			User:   cfg.SMTPUser,
			Pass:   cfg.SMTPPass,
			From:   cfg.FromEmail,
			To:     cfg.ToEmail,
		})
	} else {
		l.Info("mail relay not configured, notifications disabled")
	}

	store := storage.NewDiskStore(cfg.UploadDir)
	svc := services.NewSubmissionService(repo, notifier, l)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.MaxMultipartMemory = 12 << 20

	routes.RegisterRoutes(r, routes.Deps{
		Contact:   handlers.NewContactHandler(svc, store),
		UploadDir: cfg.UploadDir,
		StaticDir: cfg.StaticDir,
	})

	l.WithField("port", cfg.Port).Info("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
