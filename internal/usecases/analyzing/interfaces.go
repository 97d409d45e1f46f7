package analyzing

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
)

// RecordStore é a fonte dos registros de vendas e da tabela de plataformas
type RecordStore interface {
	// FetchSalesRecords devolve os registros já normalizados, limitados pelo driver
	FetchSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
	// FetchPlatforms devolve as linhas da tabela de plataformas
	FetchPlatforms(ctx context.Context) ([]domain.Platform, error)
}

// Analyzer expõe as visões do dashboard. Cada método busca e filtra os
// registros de forma independente.
type Analyzer interface {
	Summary(ctx context.Context, filter *domain.FilterSpec) (*domain.SalesSummary, error)
	TimeSeries(ctx context.Context, filter *domain.FilterSpec) ([]domain.TimeSeriesPoint, error)
	PlatformAnalysis(ctx context.Context, filter *domain.FilterSpec) ([]domain.PlatformAnalysis, error)
	CustomerAnalysis(ctx context.Context, filter *domain.FilterSpec) ([]domain.CustomerAnalysis, error)
	ProductAnalysis(ctx context.Context, filter *domain.FilterSpec) ([]domain.ProductAnalysis, error)
	PrefectureAnalysis(ctx context.Context, filter *domain.FilterSpec) ([]domain.PrefectureAnalysis, error)
	CategoryAnalysis(ctx context.Context, filter *domain.FilterSpec) ([]domain.CategoryAnalysis, error)
	// LTVAnalysis ignora o filtro e considera todos os registros
	LTVAnalysis(ctx context.Context, filter *domain.FilterSpec) (*domain.LTVResult, error)

	// Overview calcula todas as visões de uma vez; falhas são reportadas por visão
	Overview(ctx context.Context, filter *domain.FilterSpec) (*domain.Overview, error)

	Platforms(ctx context.Context) ([]domain.Platform, error)
	ListSales(ctx context.Context, offset, limit int, query string) (*domain.SalesPage, error)
	GetSale(ctx context.Context, id string) (*domain.SalesRecord, error)
}
