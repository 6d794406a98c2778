package main

import (
	"MCQ-PDF-Exam-Backend/internal/api"
	"MCQ-PDF-Exam-Backend/internal/config"
	"MCQ-PDF-Exam-Backend/internal/logger"
	"MCQ-PDF-Exam-Backend/internal/pdftext"
	"MCQ-PDF-Exam-Backend/internal/repository"
	"MCQ-PDF-Exam-Backend/internal/router"
	"MCQ-PDF-Exam-Backend/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	v := config.New()
	cfg, found, err := config.Load(v)
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if !found {
		log.Warn("config.yaml not found, using defaults and environment variables")
	} else {
		config.Watch(v, func(next config.Config, e fsnotify.Event) {
			if logger.SetLevel(log, next.Log.Level) {
				log.WithFields(logrus.Fields{
					"file":  e.Name,
					"level": next.Log.Level,
				}).Info("config reloaded")
			}
		}, func(err error) {
			log.WithError(err).Warn("config reload failed")
		})
	}

	gin.SetMode(cfg.Gin.Mode)

	fs := afero.NewOsFs()
	examRepo, err := repository.NewExamRepository(fs, cfg.Storage.DataDir, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialise exam repository")
	}
	answerRepo, err := repository.NewAnswerRepository(fs, cfg.Storage.DataDir, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialise answer repository")
	}

	examService := service.NewExamService(pdftext.NewExtractor(log), examRepo, answerRepo, cfg.Exam.Title, log)
	examHandler := api.NewExamHandler(examService, cfg.Server.MaxUploadBytes(), log)

	r := router.SetupRouter(examHandler, router.Options{
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		StaticDir:          cfg.Static.Dir,
		MaxMultipartMemory: cfg.Server.MaxUploadBytes(),
	}, log)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.WithField("addr", cfg.Server.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}
