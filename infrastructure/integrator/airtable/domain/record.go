package airtabledomain

// Record é uma linha de tabela como devolvida pela API do Airtable
type Record struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

// ListRecordsResponse é uma página da listagem de registros. Offset vazio
// indica a última página.
type ListRecordsResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}
