package domain

// SalesSummary contém os totais exibidos nos cards do dashboard
type SalesSummary struct {
	TotalSales        int64   `json:"totalSales"`
	TotalTransactions int     `json:"totalTransactions"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
}

type TimeSeriesPoint struct {
	Date         string `json:"date"`
	Sales        int64  `json:"sales"`
	Transactions int    `json:"transactions"`
}

type PlatformAnalysis struct {
	Platform          string  `json:"platform"`
	Sales             int64   `json:"sales"`
	Transactions      int     `json:"transactions"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
}

type CustomerAnalysis struct {
	AgeGroup          string  `json:"ageGroup"`
	Gender            string  `json:"gender"`
	Sales             int64   `json:"sales"`
	Transactions      int     `json:"transactions"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type ProductAnalysis struct {
	ProductName       string  `json:"productName"`
	Category          string  `json:"category"`
	Sales             int64   `json:"sales"`
	Transactions      int     `json:"transactions"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type PrefectureAnalysis struct {
	Prefecture        string  `json:"prefecture"`
	Sales             int64   `json:"sales"`
	Transactions      int     `json:"transactions"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type CategoryAnalysis struct {
	Category          string  `json:"category"`
	Sales             int64   `json:"sales"`
	Transactions      int     `json:"transactions"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	Percentage        float64 `json:"percentage"`
}

// CustomerLTV acumula o histórico de compras de um cliente
type CustomerLTV struct {
	UserID     string `json:"userId"`
	TotalSpent int64  `json:"totalSpent"`
	OrderCount int    `json:"orderCount"`
}

// LTVResult é calculado sobre todos os registros, sem filtros
type LTVResult struct {
	RepeatRate  float64       `json:"repeatRate"`
	CustomerLTV []CustomerLTV `json:"customerLTV"`
}

// Overview agrega todas as visões do dashboard para uma única requisição.
// Uma visão com erro fica nula e o motivo vai para Errors.
type Overview struct {
	Filters     *FilterSpec          `json:"filters,omitempty"`
	Summary     *SalesSummary        `json:"summary"`
	TimeSeries  []TimeSeriesPoint    `json:"timeSeries"`
	Platforms   []PlatformAnalysis   `json:"platforms"`
	Customers   []CustomerAnalysis   `json:"customers"`
	Products    []ProductAnalysis    `json:"products"`
	Prefectures []PrefectureAnalysis `json:"prefectures"`
	Categories  []CategoryAnalysis   `json:"categories"`
	LTV         *LTVResult           `json:"ltv"`
	Errors      map[string]string    `json:"errors,omitempty"`
}

// AverageOrderValue divide o total pelo número de transações, 0 quando não há transações
func AverageOrderValue(sales int64, transactions int) float64 {
	if transactions == 0 {
		return 0
	}
	return float64(sales) / float64(transactions)
}

// Percentage calcula part/total em porcentagem, 0 quando o total é zero
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
