package airtable

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/furusato-dashboard-api/infrastructure/integrator/airtable/airtableclient"
	airtabledomain "github.com/vfg2006/furusato-dashboard-api/infrastructure/integrator/airtable/domain"
	"github.com/vfg2006/furusato-dashboard-api/internal/config"
	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
)

const (
	defaultMaxSalesRecords    = 1000
	defaultMaxPlatformRecords = 100
)

type AirtableService struct {
	cfg    *config.Config
	Client airtableclient.Client
}

func New(cfg *config.Config, client airtableclient.Client) *AirtableService {
	return &AirtableService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchSalesRecords lê a tabela de vendas. Sem chave de API devolve lista vazia.
func (s *AirtableService) FetchSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	if s.cfg.Airtable.APIKey == "" {
		logrus.Warn("AIRTABLE_API_KEY não configurada, nenhum registro de venda será lido")
		return []domain.SalesRecord{}, nil
	}

	raw, err := s.Client.ListRecords(ctx, airtableclient.ListRecordsParams{
		TableID:    s.cfg.Airtable.SalesTableID,
		MaxRecords: maxOrDefault(s.cfg.Airtable.MaxSalesRecords, defaultMaxSalesRecords),
	})
	if err != nil {
		logFetchError(err, s.cfg.Airtable.SalesTableID)
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, toSalesRecord(r))
	}

	return records, nil
}

// FetchPlatforms lê a tabela de plataformas. Sem chave de API devolve lista vazia.
func (s *AirtableService) FetchPlatforms(ctx context.Context) ([]domain.Platform, error) {
	if s.cfg.Airtable.APIKey == "" {
		logrus.Warn("AIRTABLE_API_KEY não configurada, nenhuma plataforma será lida")
		return []domain.Platform{}, nil
	}

	raw, err := s.Client.ListRecords(ctx, airtableclient.ListRecordsParams{
		TableID:    s.cfg.Airtable.PlatformTableID,
		MaxRecords: maxOrDefault(s.cfg.Airtable.MaxPlatformRecords, defaultMaxPlatformRecords),
	})
	if err != nil {
		logFetchError(err, s.cfg.Airtable.PlatformTableID)
		return nil, err
	}

	platforms := make([]domain.Platform, 0, len(raw))
	for _, r := range raw {
		platforms = append(platforms, toPlatform(r))
	}

	return platforms, nil
}

// logFetchError separa chave inválida e limite de requisições dos demais erros
func logFetchError(err error, tableID string) {
	logger := logrus.WithError(err).WithField("table_id", tableID)

	var apiErr *airtabledomain.APIError
	if !errors.As(err, &apiErr) {
		logger.Error("Erro ao buscar tabela no Airtable")
		return
	}

	logger = logger.WithField("status", apiErr.StatusCode)
	switch {
	case apiErr.IsAuthError():
		logger.Error("Airtable recusou a chave de API, verifique AIRTABLE_API_KEY e o acesso à base")
	case apiErr.IsRateLimited():
		logger.Warn("Limite de requisições do Airtable excedido")
	default:
		logger.Error("Erro ao buscar tabela no Airtable")
	}
}

func maxOrDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

// decodeFields preenche o destino com os campos do registro. Campos com tipo
// inesperado ficam com o valor zero e o restante é aproveitado.
func decodeFields(record airtabledomain.Record, target any) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar decoder de campos do Airtable")
		return
	}

	if err := decoder.Decode(record.Fields); err != nil {
		logrus.WithFields(logrus.Fields{
			"record_id": record.ID,
			"error":     err,
		}).Warn("Registro do Airtable com campos inválidos")
	}
}

func toSalesRecord(record airtabledomain.Record) domain.SalesRecord {
	var fields airtabledomain.SalesFields
	decodeFields(record, &fields)

	sale := domain.SalesRecord{
		ID:               record.ID,
		Name:             fields.Name,
		UserID:           fields.UserID,
		ProductName:      fields.ProductName,
		Category:         fields.Category,
		Amount:           fields.Amount,
		OrderDate:        fields.OrderDate,
		Prefecture:       fields.Prefecture,
		AgeGroup:         fields.AgeGroup,
		Gender:           fields.Gender,
		PaymentMethod:    fields.PaymentMethod,
		Status:           fields.Status,
		PlatformCategory: fields.PlatformCategory,
	}
	sale.Normalize()

	return sale
}

func toPlatform(record airtabledomain.Record) domain.Platform {
	var fields airtabledomain.PlatformFields
	decodeFields(record, &fields)

	platform := domain.Platform{
		ID:            record.ID,
		Name:          fields.Name,
		LinkedRecords: fields.LinkedRecords,
	}
	platform.Normalize()

	return platform
}
