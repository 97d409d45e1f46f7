// Package recordstore escolhe o driver de leitura dos registros de vendas
package recordstore

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/furusato-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/furusato-dashboard-api/infrastructure/integrator/airtable"
	"github.com/vfg2006/furusato-dashboard-api/infrastructure/integrator/airtable/airtableclient"
	"github.com/vfg2006/furusato-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/furusato-dashboard-api/internal/config"
	"github.com/vfg2006/furusato-dashboard-api/internal/usecases/analyzing"
)

// Result traz o record store pronto e a função que libera seus recursos
type Result struct {
	Store   analyzing.RecordStore
	Cleanup func() error
}

// Connector abre a conexão com o banco; substituível em testes
type Connector func(ctx context.Context, cfg config.Database) (postgres.Queryer, func() error, error)

func connectPostgres(ctx context.Context, cfg config.Database) (postgres.Queryer, func() error, error) {
	conn, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return conn, conn.Close, nil
}

// New cria o record store do driver configurado em RECORD_STORE_DRIVER
func New(ctx context.Context, cfg *config.Config) (*Result, error) {
	return NewWithConnector(ctx, cfg, connectPostgres)
}

func NewWithConnector(ctx context.Context, cfg *config.Config, connect Connector) (*Result, error) {
	switch cfg.RecordStore.Driver {
	case config.RecordStoreAirtable, "":
		client := airtableclient.NewClient(cfg)
		logrus.WithField("base_id", cfg.Airtable.BaseID).Info("Record store: Airtable")

		return &Result{
			Store:   airtable.New(cfg, client),
			Cleanup: func() error { return nil },
		}, nil

	case config.RecordStorePostgres:
		conn, cleanup, err := connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
		}
		logrus.Info("Record store: Postgres")

		return &Result{
			Store:   repository.NewSalesRecordRepository(conn),
			Cleanup: cleanup,
		}, nil

	default:
		return nil, fmt.Errorf("record store driver não suportado: %s", cfg.RecordStore.Driver)
	}
}
