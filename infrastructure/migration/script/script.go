// Espelha as tabelas de vendas e plataformas do Airtable no Postgres, para
// uso com RECORD_STORE_DRIVER=postgres.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/furusato-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/furusato-dashboard-api/infrastructure/integrator/airtable"
	"github.com/vfg2006/furusato-dashboard-api/infrastructure/integrator/airtable/airtableclient"
	"github.com/vfg2006/furusato-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/furusato-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/furusato-dashboard-api/internal/config"
	"github.com/vfg2006/furusato-dashboard-api/pkg/log"
)

func main() {
	createSchema := flag.Bool("create-schema", true, "cria as tabelas se não existirem")
	timeout := flag.Duration("timeout", 5*time.Minute, "tempo máximo da execução")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(log.Options{Level: cfg.App.LogLevel})
	logrus.Info("Iniciando espelhamento do Airtable...")

	if cfg.Airtable.APIKey == "" {
		logrus.Fatal("AIRTABLE_API_KEY não configurada")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	source := airtable.New(cfg, airtableclient.NewClient(cfg))
	target := repository.NewSalesRecordRepository(conn)

	report, err := migration.Mirror(ctx, source, conn, target, migration.Options{CreateSchema: *createSchema})
	if err != nil {
		logrus.WithError(err).Fatal("Espelhamento falhou")
	}

	logrus.WithFields(logrus.Fields{
		"platforms":             report.Platforms,
		"sales_records":         report.SalesRecords,
		"removed_sales_records": report.RemovedSalesRecords,
		"elapsed":               report.Elapsed.String(),
	}).Info("Espelhamento finalizado")
}
