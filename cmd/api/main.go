package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/furusato-dashboard-api/infrastructure/recordstore"
	"github.com/vfg2006/furusato-dashboard-api/internal/api"
	"github.com/vfg2006/furusato-dashboard-api/internal/config"
	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
	"github.com/vfg2006/furusato-dashboard-api/internal/scheduler"
	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/furusato-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(log.Options{
		Level:      cfg.App.LogLevel,
		File:       cfg.App.LogFile,
		MaxSizeMB:  cfg.App.LogMaxSizeMB,
		MaxBackups: cfg.App.LogMaxBackups,
		MaxAgeDays: cfg.App.LogMaxAgeDays,
	})
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := recordstore.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o record store")
	}
	defer func() {
		if err := store.Cleanup(); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar o record store")
		}
	}()

	directory := newDirectory(cfg.Directory)

	analyzer := analyzing.NewService(cfg, store.Store, directory)
	authenticator := authenticating.NewService(cfg)

	platformSyncService := scheduler.NewPlatformDirectorySyncService(store.Store, directory, cfg)
	if err := platformSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do diretório de plataformas")
	} else if cfg.PlatformDirectorySync.Enabled {
		// Primeira carga sem esperar o próximo horário da cron
		platformSyncService.TriggerManualSync()
	}

	server, err := api.New(cfg, analyzer, authenticator, platformSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newDirectory monta o Directory a partir da configuração, usando os valores
// padrão para as tabelas não informadas
func newDirectory(cfg config.Directory) *domain.Directory {
	platforms := cfg.PlatformPairs()
	if len(platforms) == 0 {
		platforms = domain.DefaultPlatforms
	}

	ageGroups := cfg.AgeGroups
	if len(ageGroups) == 0 {
		ageGroups = domain.DefaultAgeGroups
	}

	genders := cfg.Genders
	if len(genders) == 0 {
		genders = domain.DefaultGenders
	}

	logrus.WithFields(logrus.Fields{
		"platforms":  len(platforms),
		"age_groups": len(ageGroups),
		"genders":    len(genders),
	}).Info("Diretório de resolução carregado")

	return domain.NewDirectory(platforms, ageGroups, genders)
}
