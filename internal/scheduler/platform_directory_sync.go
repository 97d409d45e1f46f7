// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/furusato-dashboard-api/internal/config"
	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
	"github.com/vfg2006/furusato-dashboard-api/pkg/utils"
)

const platformSyncTimeout = 30 * time.Second

var errEmptyPlatformTable = errors.New("tabela de plataformas vazia")

// PlatformSource é a leitura da tabela de plataformas
type PlatformSource interface {
	FetchPlatforms(ctx context.Context) ([]domain.Platform, error)
}

type PlatformDirectorySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PlatformDirectorySyncService mantém os pares id <-> nome de plataforma do
// Directory iguais à tabela de plataformas
type PlatformDirectorySyncService struct {
	scheduler           *gocron.Scheduler
	source              PlatformSource
	directory           *domain.Directory
	config              PlatformDirectorySyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastPlatformCount   int
}

func NewPlatformDirectorySyncService(
	source PlatformSource,
	directory *domain.Directory,
	cfg *config.Config,
) *PlatformDirectorySyncService {
	syncConfig := PlatformDirectorySyncConfig{
		CronSchedule: cfg.PlatformDirectorySync.CronSchedule, // Default: a cada hora
		SyncEnabled:  cfg.PlatformDirectorySync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador do diretório de plataformas carregada")

	return &PlatformDirectorySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		source:    source,
		directory: directory,
		config:    syncConfig,
	}
}

func (s *PlatformDirectorySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de sincronização do diretório de plataformas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização do diretório de plataformas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncPlatforms(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização do diretório de plataformas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do diretório de plataformas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do diretório de plataformas")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncPlatforms lê a tabela de plataformas e troca os pares do Directory.
// Em caso de falha ou tabela vazia o diretório atual é mantido.
func (s *PlatformDirectorySyncService) SyncPlatforms(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização do diretório de plataformas já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastRunID, _ = utils.GenerateID(8)
	s.lastSyncStartedAt = time.Now()
	runID := s.lastRunID
	s.syncMutex.Unlock()

	count, err := s.syncPlatforms(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastPlatformCount = count
	}
	s.syncMutex.Unlock()

	logger := logrus.WithFields(logrus.Fields{"job": runID, "platforms": count})
	if err != nil {
		logger.WithError(err).Warn("Diretório de plataformas mantido sem alterações")
		return err
	}
	logger.Info("Diretório de plataformas atualizado")

	return nil
}

func (s *PlatformDirectorySyncService) syncPlatforms(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, platformSyncTimeout)
	defer cancel()

	platforms, err := s.source.FetchPlatforms(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar tabela de plataformas: %w", err)
	}

	pairs := make(map[string]string, len(platforms))
	for _, p := range platforms {
		if p.ID == "" || p.Name == "" {
			continue
		}
		pairs[p.ID] = p.Name
	}

	if len(pairs) == 0 {
		return 0, errEmptyPlatformTable
	}

	s.directory.ReplacePlatforms(pairs)

	return len(pairs), nil
}

// TriggerManualSync inicia manualmente uma sincronização do diretório
func (s *PlatformDirectorySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do diretório de plataformas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do diretório de plataformas")
	go func() {
		if err := s.SyncPlatforms(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual do diretório de plataformas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *PlatformDirectorySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"platforms":              s.lastPlatformCount,
		"platform_directory":     s.directory.Platforms(),
	}
}
