// Package migration copia as tabelas do Airtable para o espelho no Postgres
package migration

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/furusato-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/furusato-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
)

// Source é a origem dos registros, normalmente o Airtable
type Source interface {
	FetchSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
	FetchPlatforms(ctx context.Context) ([]domain.Platform, error)
}

// Target grava os registros dentro da transação recebida
type Target interface {
	UpsertSalesRecords(ctx context.Context, q postgres.Queryer, records []domain.SalesRecord) error
	UpsertPlatforms(ctx context.Context, q postgres.Queryer, platforms []domain.Platform) error
	DeleteSalesRecordsNotIn(ctx context.Context, q postgres.Queryer, ids []string) (int64, error)
	DeletePlatformsNotIn(ctx context.Context, q postgres.Queryer, ids []string) (int64, error)
}

// Database é a conexão usada para criar o schema e abrir a transação
type Database interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Options struct {
	CreateSchema bool
}

// Report resume uma execução do espelhamento
type Report struct {
	Platforms    int
	SalesRecords int
	// Linhas do espelho que não existem mais na origem
	RemovedPlatforms    int64
	RemovedSalesRecords int64
	Elapsed             time.Duration
}

// Mirror lê as duas tabelas da origem e grava tudo em uma única transação.
// Linhas ausentes na origem são removidas na mesma transação.
// Nada é gravado se qualquer leitura falhar.
func Mirror(ctx context.Context, source Source, db Database, target Target, opts Options) (*Report, error) {
	start := time.Now()

	if opts.CreateSchema {
		if _, err := db.ExecContext(ctx, repository.Schema); err != nil {
			return nil, errors.Wrap(err, "erro ao criar schema")
		}
		logrus.Info("Schema do espelho verificado")
	}

	platforms, err := source.FetchPlatforms(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler plataformas")
	}

	records, err := source.FetchSalesRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler registros de venda")
	}

	logrus.WithFields(logrus.Fields{
		"platforms":     len(platforms),
		"sales_records": len(records),
	}).Info("Registros lidos da origem")

	report := &Report{
		Platforms:    len(platforms),
		SalesRecords: len(records),
	}

	err = db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := target.UpsertPlatforms(ctx, tx, platforms); err != nil {
			return err
		}
		if err := target.UpsertSalesRecords(ctx, tx, records); err != nil {
			return err
		}

		removed, err := target.DeletePlatformsNotIn(ctx, tx, platformIDs(platforms))
		if err != nil {
			return err
		}
		report.RemovedPlatforms = removed

		removed, err = target.DeleteSalesRecordsNotIn(ctx, tx, salesRecordIDs(records))
		if err != nil {
			return err
		}
		report.RemovedSalesRecords = removed

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar espelho")
	}

	report.Elapsed = time.Since(start)

	logrus.WithFields(logrus.Fields{
		"platforms":             report.Platforms,
		"sales_records":         report.SalesRecords,
		"removed_platforms":     report.RemovedPlatforms,
		"removed_sales_records": report.RemovedSalesRecords,
		"elapsed":               report.Elapsed.String(),
	}).Info("Espelhamento concluído")

	return report, nil
}

func platformIDs(platforms []domain.Platform) []string {
	ids := make([]string, 0, len(platforms))
	for _, p := range platforms {
		ids = append(ids, p.ID)
	}
	return ids
}

func salesRecordIDs(records []domain.SalesRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}
