package analyzing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/furusato-dashboard-api/internal/config"
	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
	"github.com/vfg2006/furusato-dashboard-api/pkg/apiErrors"
)

// Nomes das visões usados no mapa de erros do overview
const (
	ViewSummary     = "summary"
	ViewTimeSeries  = "timeSeries"
	ViewPlatforms   = "platforms"
	ViewCustomers   = "customers"
	ViewProducts    = "products"
	ViewPrefectures = "prefectures"
	ViewCategories  = "categories"
	ViewLTV         = "ltv"
)

const (
	defaultPageLimit       = 20
	maxPageLimit           = 100
	defaultOverviewWorkers = 4
)

type Service struct {
	store           RecordStore
	directory       *domain.Directory
	useSnapshot     bool
	overviewWorkers int
	defaultLimit    int
	maxLimit        int
	topN            int
}

// NewService cria o serviço de análise sobre o record store informado
func NewService(cfg *config.Config, store RecordStore, directory *domain.Directory) *Service {
	s := &Service{
		store:           store,
		directory:       directory,
		useSnapshot:     true,
		overviewWorkers: defaultOverviewWorkers,
		defaultLimit:    defaultPageLimit,
		maxLimit:        maxPageLimit,
		topN:            DefaultTopN,
	}

	if directory == nil {
		s.directory = domain.NewDefaultDirectory()
	}

	if cfg != nil {
		s.useSnapshot = cfg.Analytics.RequestSnapshot
		if cfg.Analytics.OverviewWorkers > 0 {
			s.overviewWorkers = cfg.Analytics.OverviewWorkers
		}
		if cfg.Analytics.DefaultPageLimit > 0 {
			s.defaultLimit = cfg.Analytics.DefaultPageLimit
		}
		if cfg.Analytics.MaxPageLimit > 0 {
			s.maxLimit = cfg.Analytics.MaxPageLimit
		}
		if cfg.Analytics.TopN > 0 {
			s.topN = cfg.Analytics.TopN
		}
	}

	return s
}

// fetchSales lê os registros, reaproveitando o snapshot da requisição quando houver
func (s *Service) fetchSales(ctx context.Context) ([]domain.SalesRecord, error) {
	fetch := func() ([]domain.SalesRecord, error) {
		start := time.Now()
		records, err := s.store.FetchSalesRecords(ctx)
		if err != nil {
			return nil, &StoreError{Op: "sales", Err: err}
		}

		logrus.WithFields(logrus.Fields{
			"records":     len(records),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("Registros de vendas carregados")

		return records, nil
	}

	if snap := snapshotFrom(ctx); snap != nil && (s.useSnapshot || snap.forced) {
		return snap.load(fetch)
	}

	return fetch()
}

func (s *Service) filtered(ctx context.Context, filter *domain.FilterSpec) ([]domain.SalesRecord, error) {
	records, err := s.fetchSales(ctx)
	if err != nil {
		return nil, err
	}

	return ApplyFilter(records, filter, s.directory), nil
}

func (s *Service) Summary(ctx context.Context, filter *domain.FilterSpec) (*domain.SalesSummary, error) {
	records, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular o resumo de vendas")
	}

	return Summarize(records), nil
}

// TimeSeries aplica somente o intervalo de datas do filtro
func (s *Service) TimeSeries(ctx context.Context, filter *domain.FilterSpec) ([]domain.TimeSeriesPoint, error) {
	records, err := s.filtered(ctx, filter.DateRangeOnly())
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular a série temporal")
	}

	return BuildTimeSeries(records), nil
}

func (s *Service) PlatformAnalysis(ctx context.Context, filter *domain.FilterSpec) ([]domain.PlatformAnalysis, error) {
	records, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular a análise por plataforma")
	}

	return AnalyzePlatforms(records, filter, s.directory), nil
}

func (s *Service) CustomerAnalysis(ctx context.Context, filter *domain.FilterSpec) ([]domain.CustomerAnalysis, error) {
	records, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular a análise de clientes")
	}

	return AnalyzeCustomers(records, s.directory), nil
}

func (s *Service) ProductAnalysis(ctx context.Context, filter *domain.FilterSpec) ([]domain.ProductAnalysis, error) {
	records, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular o ranking de produtos")
	}

	return AnalyzeProducts(records, s.topN), nil
}

func (s *Service) PrefectureAnalysis(ctx context.Context, filter *domain.FilterSpec) ([]domain.PrefectureAnalysis, error) {
	records, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular o ranking de províncias")
	}

	return AnalyzePrefectures(records, s.topN), nil
}

func (s *Service) CategoryAnalysis(ctx context.Context, filter *domain.FilterSpec) ([]domain.CategoryAnalysis, error) {
	records, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular a análise por categoria")
	}

	return AnalyzeCategories(records), nil
}

// LTVAnalysis recebe o filtro apenas para manter a assinatura das demais visões
func (s *Service) LTVAnalysis(ctx context.Context, _ *domain.FilterSpec) (*domain.LTVResult, error) {
	records, err := s.fetchSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular o LTV")
	}

	return AnalyzeLTV(records), nil
}

// Overview calcula as visões em paralelo sobre um único snapshot. Uma visão
// com erro fica nula no resultado, com o código do erro em Errors, e não
// interrompe as demais.
func (s *Service) Overview(ctx context.Context, filter *domain.FilterSpec) (*domain.Overview, error) {
	ctx = withForcedSnapshot(ctx)

	overview := &domain.Overview{Filters: filter}

	var mu sync.Mutex
	viewErrors := make(map[string]error)
	views := 0

	g := new(errgroup.Group)
	g.SetLimit(s.overviewWorkers)

	run := func(view string, fn func() error) {
		views++
		g.Go(func() error {
			if err := fn(); err != nil {
				mu.Lock()
				viewErrors[view] = err
				mu.Unlock()
			}
			return nil
		})
	}

	run(ViewSummary, func() (err error) {
		overview.Summary, err = s.Summary(ctx, filter)
		return err
	})
	run(ViewTimeSeries, func() (err error) {
		overview.TimeSeries, err = s.TimeSeries(ctx, filter)
		return err
	})
	run(ViewPlatforms, func() (err error) {
		overview.Platforms, err = s.PlatformAnalysis(ctx, filter)
		return err
	})
	run(ViewCustomers, func() (err error) {
		overview.Customers, err = s.CustomerAnalysis(ctx, filter)
		return err
	})
	run(ViewProducts, func() (err error) {
		overview.Products, err = s.ProductAnalysis(ctx, filter)
		return err
	})
	run(ViewPrefectures, func() (err error) {
		overview.Prefectures, err = s.PrefectureAnalysis(ctx, filter)
		return err
	})
	run(ViewCategories, func() (err error) {
		overview.Categories, err = s.CategoryAnalysis(ctx, filter)
		return err
	})
	run(ViewLTV, func() (err error) {
		overview.LTV, err = s.LTVAnalysis(ctx, filter)
		return err
	})

	_ = g.Wait()

	if len(viewErrors) == 0 {
		return overview, nil
	}

	overview.Errors = make(map[string]string, len(viewErrors))
	for view, err := range viewErrors {
		overview.Errors[view] = viewErrorCode(err)
		logrus.WithError(err).WithField("view", view).Warn("Visão do overview indisponível")
	}

	// Sem nenhuma visão disponível o overview inteiro falha
	if len(viewErrors) == views {
		return nil, viewErrors[ViewSummary]
	}

	return overview, nil
}

// viewErrorCode devolve o código de API exposto no overview; o detalhe fica no log
func viewErrorCode(err error) string {
	if IsStoreError(err) {
		return apiErrors.ErrExternalService
	}
	return apiErrors.ErrInternalServer
}

func (s *Service) Platforms(ctx context.Context) ([]domain.Platform, error) {
	platforms, err := s.store.FetchPlatforms(ctx)
	if err != nil {
		return nil, errors.Wrap(&StoreError{Op: "platforms", Err: err}, "erro ao listar plataformas")
	}
	if platforms == nil {
		platforms = []domain.Platform{}
	}

	return platforms, nil
}

// ListSales pagina os registros, com busca opcional sem diferenciar maiúsculas
// em name, userId, productName e prefecture. Count é o total antes do corte.
func (s *Service) ListSales(ctx context.Context, offset, limit int, query string) (*domain.SalesPage, error) {
	if offset < 0 || limit < 0 {
		return nil, ErrInvalidPaging
	}
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	records, err := s.fetchSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar registros de vendas")
	}

	matches := records
	if query = strings.TrimSpace(query); query != "" {
		matches = searchSales(records, query)
	}

	page := &domain.SalesPage{Data: []domain.SalesRecord{}, Count: len(matches)}
	if offset >= len(matches) {
		return page, nil
	}

	end := offset + limit
	if end > len(matches) {
		end = len(matches)
	}
	page.Data = append(page.Data, matches[offset:end]...)

	return page, nil
}

func searchSales(records []domain.SalesRecord, query string) []domain.SalesRecord {
	needle := strings.ToLower(query)
	found := make([]domain.SalesRecord, 0)
	for _, r := range records {
		for _, field := range []string{r.Name, r.UserID, r.ProductName, r.Prefecture} {
			if strings.Contains(strings.ToLower(field), needle) {
				found = append(found, r)
				break
			}
		}
	}
	return found
}

func (s *Service) GetSale(ctx context.Context, id string) (*domain.SalesRecord, error) {
	records, err := s.fetchSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar registro de venda")
	}

	for i := range records {
		if records[i].ID == id {
			record := records[i]
			return &record, nil
		}
	}

	return nil, errors.Wrapf(ErrSaleNotFound, "id %s", id)
}
