package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/furusato-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/furusato-dashboard-api/infrastructure/integrator/airtable"
	"github.com/vfg2006/furusato-dashboard-api/internal/config"
)

func TestNewWithConnector(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		connect  Connector
		validate func(t *testing.T, result *Result, err error)
	}{
		{
			name:   "Airtable por padrão",
			driver: "",
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.IsType(t, &airtable.AirtableService{}, result.Store)
				assert.NoError(t, result.Cleanup())
			},
		},
		{
			name:   "Postgres usa a conexão aberta",
			driver: config.RecordStorePostgres,
			connect: func(ctx context.Context, cfg config.Database) (postgres.Queryer, func() error, error) {
				return (*sql.DB)(nil), func() error { return nil }, nil
			},
			validate: func(t *testing.T, result *Result, err error) {
				require.NoError(t, err)
				assert.NotNil(t, result.Store)
			},
		},
		{
			name:   "Falha de conexão",
			driver: config.RecordStorePostgres,
			connect: func(ctx context.Context, cfg config.Database) (postgres.Queryer, func() error, error) {
				return nil, nil, errors.New("connection refused")
			},
			validate: func(t *testing.T, result *Result, err error) {
				require.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:   "Driver desconhecido",
			driver: "mongo",
			validate: func(t *testing.T, result *Result, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{RecordStore: config.RecordStore{Driver: tt.driver}}

			result, err := NewWithConnector(context.Background(), cfg, tt.connect)

			tt.validate(t, result, err)
		})
	}
}
