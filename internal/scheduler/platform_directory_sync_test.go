package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/furusato-dashboard-api/internal/config"
	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/analyzing/mocks"
)

func TestPlatformDirectorySyncService_SyncPlatforms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockRecordStore(ctrl)

	tests := []struct {
		name     string
		setup    func()
		wantErr  bool
		validate func(t *testing.T, dir *domain.Directory, status map[string]any)
	}{
		{
			name: "Substitui os pares pelo conteúdo da tabela",
			setup: func() {
				mockStore.EXPECT().
					FetchPlatforms(gomock.Any()).
					Return([]domain.Platform{
						{ID: "recNew", Name: "ふるなび"},
						{ID: "recE2xXek8GyjVaQk", Name: "さとふる"},
						{ID: "recBlank", Name: ""},
					}, nil)
			},
			validate: func(t *testing.T, dir *domain.Directory, status map[string]any) {
				assert.Equal(t, map[string]string{"recNew": "ふるなび", "recE2xXek8GyjVaQk": "さとふる"}, dir.Platforms())
				assert.Equal(t, []string{"recNew"}, dir.PlatformIDs([]string{"ふるなび"}))
				assert.Empty(t, dir.PlatformIDs([]string{"ふるさとチョイス"}))
				assert.Equal(t, 2, status["platforms"])
				assert.Equal(t, dir.Platforms(), status["platform_directory"])
				assert.Equal(t, "", status["last_sync_error"])
			},
		},
		{
			name: "Falha na leitura mantém o diretório",
			setup: func() {
				mockStore.EXPECT().
					FetchPlatforms(gomock.Any()).
					Return(nil, errors.New("airtable indisponível"))
			},
			wantErr: true,
			validate: func(t *testing.T, dir *domain.Directory, status map[string]any) {
				assert.Equal(t, domain.DefaultPlatforms, dir.Platforms())
				assert.Contains(t, status["last_sync_error"], "airtable indisponível")
				assert.Equal(t, domain.DefaultPlatforms, status["platform_directory"])
			},
		},
		{
			name: "Tabela vazia mantém o diretório",
			setup: func() {
				mockStore.EXPECT().
					FetchPlatforms(gomock.Any()).
					Return([]domain.Platform{}, nil)
			},
			wantErr: true,
			validate: func(t *testing.T, dir *domain.Directory, status map[string]any) {
				assert.Equal(t, domain.DefaultPlatforms, dir.Platforms())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			dir := domain.NewDefaultDirectory()
			service := NewPlatformDirectorySyncService(mockStore, dir, &config.Config{})

			err := service.SyncPlatforms(context.Background())

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			tt.validate(t, dir, service.GetStatus())
		})
	}
}

func TestPlatformDirectorySyncService_StartDisabled(t *testing.T) {
	service := NewPlatformDirectorySyncService(nil, domain.NewDefaultDirectory(), &config.Config{})

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestPlatformDirectorySyncService_StartInvalidCron(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := NewPlatformDirectorySyncService(nil, domain.NewDefaultDirectory(), &config.Config{
		PlatformDirectorySync: config.PlatformDirectorySync{Enabled: true, CronSchedule: "not a cron"},
	})

	assert.Error(t, service.Start(ctx))
}
