package analyzing

import (
	"sort"

	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
)

// DefaultTopN é o tamanho dos rankings de produtos e províncias
const DefaultTopN = 10

// group acumula os totais de uma chave de agrupamento
type group struct {
	key          string
	label        string
	sales        int64
	transactions int
	customers    map[string]struct{}
}

// grouper agrupa mantendo a ordem em que as chaves apareceram, para que os
// empates continuem determinísticos depois da ordenação estável
type grouper struct {
	index  map[string]*group
	groups []*group
}

func newGrouper() *grouper {
	return &grouper{index: make(map[string]*group)}
}

func (g *grouper) add(key, label string, record *domain.SalesRecord, trackCustomers bool) {
	gr, ok := g.index[key]
	if !ok {
		gr = &group{key: key, label: label}
		if trackCustomers {
			gr.customers = make(map[string]struct{})
		}
		g.index[key] = gr
		g.groups = append(g.groups, gr)
	}

	gr.sales += record.Amount
	gr.transactions++
	if gr.customers != nil {
		gr.customers[record.UserID] = struct{}{}
	}
}

func (g *grouper) sortedBySales() []*group {
	sort.SliceStable(g.groups, func(i, j int) bool {
		return g.groups[i].sales > g.groups[j].sales
	})
	return g.groups
}

func limit(groups []*group, topN int) []*group {
	if topN > 0 && len(groups) > topN {
		return groups[:topN]
	}
	return groups
}

// Summarize calcula os totais dos registros
func Summarize(records []domain.SalesRecord) *domain.SalesSummary {
	var total int64
	customers := make(map[string]struct{}, len(records))
	for i := range records {
		total += records[i].Amount
		customers[records[i].UserID] = struct{}{}
	}

	return &domain.SalesSummary{
		TotalSales:        total,
		TotalTransactions: len(records),
		AverageOrderValue: domain.AverageOrderValue(total, len(records)),
		UniqueCustomers:   len(customers),
	}
}

// BuildTimeSeries agrupa pela string exata de orderDate, em ordem crescente
func BuildTimeSeries(records []domain.SalesRecord) []domain.TimeSeriesPoint {
	g := newGrouper()
	for i := range records {
		g.add(records[i].OrderDate, records[i].OrderDate, &records[i], false)
	}

	points := make([]domain.TimeSeriesPoint, 0, len(g.groups))
	for _, gr := range g.groups {
		points = append(points, domain.TimeSeriesPoint{
			Date:         gr.key,
			Sales:        gr.sales,
			Transactions: gr.transactions,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}

// AnalyzePlatforms soma cada registro em todas as plataformas vinculadas a
// ele. Com plataformas no filtro, apenas os IDs resolvidos presentes nos
// dados entram no resultado.
func AnalyzePlatforms(records []domain.SalesRecord, filter *domain.FilterSpec, dir *domain.Directory) []domain.PlatformAnalysis {
	if dir == nil {
		dir = domain.NewDefaultDirectory()
	}

	var target map[string]bool
	if filter != nil && len(filter.Platforms) > 0 {
		target = toSet(dir.PlatformIDs(filter.Platforms))
	}

	g := newGrouper()
	for i := range records {
		seen := make(map[string]bool, len(records[i].PlatformCategory))
		for _, id := range records[i].PlatformCategory {
			if seen[id] {
				continue
			}
			seen[id] = true
			if target != nil && !target[id] {
				continue
			}
			g.add(id, dir.PlatformName(id), &records[i], true)
		}
	}

	result := make([]domain.PlatformAnalysis, 0, len(g.groups))
	for _, gr := range g.sortedBySales() {
		result = append(result, domain.PlatformAnalysis{
			Platform:          gr.label,
			Sales:             gr.sales,
			Transactions:      gr.transactions,
			AverageOrderValue: domain.AverageOrderValue(gr.sales, gr.transactions),
			UniqueCustomers:   len(gr.customers),
		})
	}

	return result
}

// AnalyzeCustomers separa as vendas pelos gêneros do diretório. Registros
// com gênero fora da lista não entram em nenhum grupo.
func AnalyzeCustomers(records []domain.SalesRecord, dir *domain.Directory) []domain.CustomerAnalysis {
	if dir == nil {
		dir = domain.NewDefaultDirectory()
	}

	g := newGrouper()
	for _, gender := range dir.Genders() {
		if _, ok := g.index[gender]; ok {
			continue
		}
		gr := &group{key: gender, label: gender}
		g.index[gender] = gr
		g.groups = append(g.groups, gr)
	}

	for i := range records {
		gr, ok := g.index[records[i].Gender]
		if !ok {
			continue
		}
		gr.sales += records[i].Amount
		gr.transactions++
	}

	result := make([]domain.CustomerAnalysis, 0, len(g.groups))
	for _, gr := range g.sortedBySales() {
		result = append(result, domain.CustomerAnalysis{
			AgeGroup:          dir.AllAgesLabel(),
			Gender:            gr.label,
			Sales:             gr.sales,
			Transactions:      gr.transactions,
			AverageOrderValue: domain.AverageOrderValue(gr.sales, gr.transactions),
		})
	}

	return result
}

// AnalyzeProducts ranqueia os produtos por vendas. A categoria é a do
// primeiro registro do produto.
func AnalyzeProducts(records []domain.SalesRecord, topN int) []domain.ProductAnalysis {
	g := newGrouper()
	for i := range records {
		g.add(records[i].ProductName, records[i].Category, &records[i], false)
	}

	groups := limit(g.sortedBySales(), topN)
	result := make([]domain.ProductAnalysis, 0, len(groups))
	for _, gr := range groups {
		result = append(result, domain.ProductAnalysis{
			ProductName:       gr.key,
			Category:          gr.label,
			Sales:             gr.sales,
			Transactions:      gr.transactions,
			AverageOrderValue: domain.AverageOrderValue(gr.sales, gr.transactions),
		})
	}

	return result
}

// AnalyzePrefectures ranqueia as províncias por vendas
func AnalyzePrefectures(records []domain.SalesRecord, topN int) []domain.PrefectureAnalysis {
	g := newGrouper()
	for i := range records {
		g.add(records[i].Prefecture, records[i].Prefecture, &records[i], false)
	}

	groups := limit(g.sortedBySales(), topN)
	result := make([]domain.PrefectureAnalysis, 0, len(groups))
	for _, gr := range groups {
		result = append(result, domain.PrefectureAnalysis{
			Prefecture:        gr.key,
			Sales:             gr.sales,
			Transactions:      gr.transactions,
			AverageOrderValue: domain.AverageOrderValue(gr.sales, gr.transactions),
		})
	}

	return result
}

// AnalyzeCategories devolve todas as categorias com a participação no total
func AnalyzeCategories(records []domain.SalesRecord) []domain.CategoryAnalysis {
	var total int64
	g := newGrouper()
	for i := range records {
		total += records[i].Amount
		g.add(records[i].Category, records[i].Category, &records[i], false)
	}

	result := make([]domain.CategoryAnalysis, 0, len(g.groups))
	for _, gr := range g.sortedBySales() {
		result = append(result, domain.CategoryAnalysis{
			Category:          gr.key,
			Sales:             gr.sales,
			Transactions:      gr.transactions,
			AverageOrderValue: domain.AverageOrderValue(gr.sales, gr.transactions),
			Percentage:        domain.Percentage(gr.sales, total),
		})
	}

	return result
}

// AnalyzeLTV agrupa por cliente. Deve receber todos os registros, sem filtro.
func AnalyzeLTV(records []domain.SalesRecord) *domain.LTVResult {
	g := newGrouper()
	for i := range records {
		g.add(records[i].UserID, records[i].UserID, &records[i], false)
	}

	repeat := 0
	customers := make([]domain.CustomerLTV, 0, len(g.groups))
	for _, gr := range g.groups {
		if gr.transactions > 1 {
			repeat++
		}
	}

	for _, gr := range g.sortedBySales() {
		customers = append(customers, domain.CustomerLTV{
			UserID:     gr.key,
			TotalSpent: gr.sales,
			OrderCount: gr.transactions,
		})
	}

	return &domain.LTVResult{
		RepeatRate:  domain.Percentage(int64(repeat), int64(len(g.groups))),
		CustomerLTV: customers,
	}
}
