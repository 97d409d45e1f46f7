package analyzing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
)

func twoRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{Amount: 10000, OrderDate: "2024-01-01", UserID: "u1", Gender: "男性", PlatformCategory: []string{"P1"}},
		{Amount: 15000, OrderDate: "2024-01-02", UserID: "u2", Gender: "女性", PlatformCategory: []string{"P1"}},
	}
}

func TestSummarize(t *testing.T) {
	dir := domain.NewDefaultDirectory()

	tests := []struct {
		name    string
		records []domain.SalesRecord
		filter  *domain.FilterSpec
		want    domain.SalesSummary
	}{
		{
			name:    "Sem filtro",
			records: twoRecords(),
			want:    domain.SalesSummary{TotalSales: 25000, TotalTransactions: 2, UniqueCustomers: 2, AverageOrderValue: 12500},
		},
		{
			name:    "Filtrado para um único dia",
			records: twoRecords(),
			filter:  &domain.FilterSpec{StartDate: "2024-01-01", EndDate: "2024-01-01"},
			want:    domain.SalesSummary{TotalSales: 10000, TotalTransactions: 1, UniqueCustomers: 1, AverageOrderValue: 10000},
		},
		{
			name:    "Sem registros",
			records: nil,
			want:    domain.SalesSummary{},
		},
		{
			name:    "userId vazio conta como um cliente",
			records: []domain.SalesRecord{{Amount: 1}, {Amount: 2}},
			want:    domain.SalesSummary{TotalSales: 3, TotalTransactions: 2, UniqueCustomers: 1, AverageOrderValue: 1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(ApplyFilter(tt.records, tt.filter, dir))
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestBuildTimeSeries(t *testing.T) {
	records := []domain.SalesRecord{
		{Amount: 300, OrderDate: "2024-01-03"},
		{Amount: 100, OrderDate: "2024-01-01"},
		{Amount: 200, OrderDate: "2024-01-03"},
	}

	got := BuildTimeSeries(records)

	assert.Equal(t, []domain.TimeSeriesPoint{
		{Date: "2024-01-01", Sales: 100, Transactions: 1},
		{Date: "2024-01-03", Sales: 500, Transactions: 2},
	}, got)
	assert.NotNil(t, BuildTimeSeries(nil))
}

func TestAnalyzePlatforms(t *testing.T) {
	dir := domain.NewDefaultDirectory()
	records := sampleRecords()

	t.Run("Registro com várias plataformas soma em cada uma", func(t *testing.T) {
		got := AnalyzePlatforms(records, nil, dir)

		require.Len(t, got, 3)
		assert.Equal(t, "ふるさとチョイス", got[0].Platform)
		assert.Equal(t, int64(30000), got[0].Sales)
		assert.Equal(t, 2, got[0].Transactions)
		assert.Equal(t, 1, got[0].UniqueCustomers)
		assert.Equal(t, 15000.0, got[0].AverageOrderValue)
		assert.Equal(t, "楽天ふるさと納税", got[1].Platform)
		assert.Equal(t, int64(20000), got[1].Sales)
		assert.Equal(t, "さとふる", got[2].Platform)

		var sum int64
		for _, p := range got {
			sum += p.Sales
		}
		assert.Equal(t, int64(65000), sum)
	})

	t.Run("Filtro restringe às plataformas escolhidas", func(t *testing.T) {
		filter := &domain.FilterSpec{Platforms: []string{"さとふる"}}
		got := AnalyzePlatforms(ApplyFilter(records, filter, dir), filter, dir)

		require.Len(t, got, 1)
		assert.Equal(t, "さとふる", got[0].Platform)
		assert.Equal(t, int64(15000), got[0].Sales)
	})

	t.Run("ID sem mapeamento aparece cru", func(t *testing.T) {
		got := AnalyzePlatforms(twoRecords(), nil, dir)

		require.Len(t, got, 1)
		assert.Equal(t, "P1", got[0].Platform)
		assert.Equal(t, 2, got[0].UniqueCustomers)
	})
}

func TestAnalyzeCustomers(t *testing.T) {
	dir := domain.NewDefaultDirectory()

	got := AnalyzeCustomers(sampleRecords(), dir)

	require.Len(t, got, 2)
	assert.Equal(t, domain.CustomerAnalysis{AgeGroup: "全体", Gender: "男性", Sales: 30000, Transactions: 2, AverageOrderValue: 15000}, got[0])
	assert.Equal(t, domain.CustomerAnalysis{AgeGroup: "全体", Gender: "女性", Sales: 15000, Transactions: 1, AverageOrderValue: 15000}, got[1])

	empty := AnalyzeCustomers(nil, dir)
	require.Len(t, empty, 2)
	assert.Equal(t, 0.0, empty[0].AverageOrderValue)
}

func TestAnalyzeProducts(t *testing.T) {
	t.Run("Categoria vem do primeiro registro do produto", func(t *testing.T) {
		records := []domain.SalesRecord{
			{ProductName: "和牛", Category: "肉類", Amount: 100},
			{ProductName: "和牛", Category: "その他", Amount: 100},
		}

		got := AnalyzeProducts(records, DefaultTopN)

		require.Len(t, got, 1)
		assert.Equal(t, "肉類", got[0].Category)
		assert.Equal(t, int64(200), got[0].Sales)
		assert.Equal(t, 100.0, got[0].AverageOrderValue)
	})

	t.Run("Limita aos dez maiores mantendo ordem estável", func(t *testing.T) {
		var records []domain.SalesRecord
		for i := 0; i < 12; i++ {
			records = append(records, domain.SalesRecord{ProductName: fmt.Sprintf("p%02d", i), Amount: 100})
		}
		records = append(records, domain.SalesRecord{ProductName: "p11", Amount: 100})

		got := AnalyzeProducts(records, DefaultTopN)

		require.Len(t, got, 10)
		assert.Equal(t, "p11", got[0].ProductName)
		assert.Equal(t, "p00", got[1].ProductName)
		assert.Equal(t, "p08", got[9].ProductName)
	})
}

func TestAnalyzePrefectures(t *testing.T) {
	got := AnalyzePrefectures(sampleRecords(), DefaultTopN)

	require.Len(t, got, 3)
	assert.Equal(t, domain.PrefectureAnalysis{Prefecture: "宮崎県", Sales: 35000, Transactions: 2, AverageOrderValue: 17500}, got[0])
	assert.Equal(t, "北海道", got[1].Prefecture)
	assert.Equal(t, "新潟県", got[2].Prefecture)
}

func TestAnalyzeCategories(t *testing.T) {
	got := AnalyzeCategories(sampleRecords())

	require.Len(t, got, 3)
	assert.Equal(t, "肉類", got[0].Category)
	assert.InDelta(t, 70.0, got[0].Percentage, 1e-9)

	var total float64
	for _, c := range got {
		total += c.Percentage
	}
	assert.InDelta(t, 100.0, total, 1e-9)

	zero := AnalyzeCategories([]domain.SalesRecord{{Category: "x"}})
	require.Len(t, zero, 1)
	assert.Equal(t, 0.0, zero[0].Percentage)
}

func TestAnalyzeLTV(t *testing.T) {
	got := AnalyzeLTV(sampleRecords())

	assert.InDelta(t, 100.0/3.0, got.RepeatRate, 1e-9)
	require.Len(t, got.CustomerLTV, 3)
	assert.Equal(t, domain.CustomerLTV{UserID: "u1", TotalSpent: 30000, OrderCount: 2}, got.CustomerLTV[0])
	assert.Equal(t, "u2", got.CustomerLTV[1].UserID)
	assert.Equal(t, "u3", got.CustomerLTV[2].UserID)

	empty := AnalyzeLTV(nil)
	assert.Equal(t, 0.0, empty.RepeatRate)
	assert.NotNil(t, empty.CustomerLTV)
}

func TestAggregators_EmptyRecordSet(t *testing.T) {
	dir := domain.NewDefaultDirectory()

	assert.Equal(t, &domain.SalesSummary{}, Summarize(nil))
	assert.Equal(t, []domain.TimeSeriesPoint{}, BuildTimeSeries(nil))
	assert.Equal(t, []domain.PlatformAnalysis{}, AnalyzePlatforms(nil, nil, dir))
	assert.Equal(t, []domain.ProductAnalysis{}, AnalyzeProducts(nil, DefaultTopN))
	assert.Equal(t, []domain.PrefectureAnalysis{}, AnalyzePrefectures(nil, DefaultTopN))
	assert.Equal(t, []domain.CategoryAnalysis{}, AnalyzeCategories(nil))
	assert.Equal(t, &domain.LTVResult{CustomerLTV: []domain.CustomerLTV{}}, AnalyzeLTV(nil))
}
