package domain

// SalesRecord representa uma doação (pedido) lida do record store
type SalesRecord struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"` // Código do pedido (ex: SF2025080001)
	UserID           string   `json:"userId"`
	ProductName      string   `json:"productName"`
	Category         string   `json:"category"`
	Amount           int64    `json:"amount"` // Valor da doação em ienes
	OrderDate        string   `json:"orderDate"`
	Prefecture       string   `json:"prefecture"`
	AgeGroup         string   `json:"ageGroup"`
	Gender           string   `json:"gender"`
	PaymentMethod    string   `json:"paymentMethod"`
	Status           string   `json:"status"`
	PlatformCategory []string `json:"platformCategory"` // IDs das plataformas vinculadas
}

// Platform representa um canal de venda (ふるさとチョイス, さとふる, ...)
type Platform struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	LinkedRecords []string `json:"linkedRecords"`
}

// SalesPage é uma página da listagem de registros de vendas
type SalesPage struct {
	Data  []SalesRecord `json:"data"`
	Count int           `json:"count"`
}

// Normalize garante que nenhum campo de lista fique nulo
func (s *SalesRecord) Normalize() {
	if s.PlatformCategory == nil {
		s.PlatformCategory = []string{}
	}
}

// Normalize garante que nenhum campo de lista fique nulo
func (p *Platform) Normalize() {
	if p.LinkedRecords == nil {
		p.LinkedRecords = []string{}
	}
}
