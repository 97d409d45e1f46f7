package airtableclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	airtabledomain "github.com/vfg2006/furusato-dashboard-api/infrastructure/integrator/airtable/domain"
)

// Tamanho máximo de página aceito pela API
const maxPageSize = 100

type ListRecordsParams struct {
	TableID    string
	MaxRecords int
}

// ListRecords segue o offset das páginas até atingir MaxRecords ou a última página
func (c *AirtableClient) ListRecords(ctx context.Context, params ListRecordsParams) ([]airtabledomain.Record, error) {
	if params.TableID == "" {
		return nil, fmt.Errorf("airtable: tabela não informada")
	}

	ctx, cancel := context.WithTimeout(ctx, c.httpClient.Timeout)
	defer cancel()

	records := make([]airtabledomain.Record, 0)
	offset := ""
	for {
		page, err := c.listPage(ctx, params, offset)
		if err != nil {
			return nil, err
		}

		records = append(records, page.Records...)
		if params.MaxRecords > 0 && len(records) >= params.MaxRecords {
			return records[:params.MaxRecords], nil
		}

		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

func (c *AirtableClient) listPage(ctx context.Context, params ListRecordsParams, offset string) (*airtabledomain.ListRecordsResponse, error) {
	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, c.config.BaseID, params.TableID)

	query := endpoint.Query()
	if params.MaxRecords > 0 {
		query.Set("maxRecords", strconv.Itoa(params.MaxRecords))
	}
	query.Set("pageSize", strconv.Itoa(maxPageSize))
	if offset != "" {
		query.Set("offset", offset)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp airtabledomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, airtabledomain.NewAPIError(resp.StatusCode, nil)
		}
		return nil, airtabledomain.NewAPIError(resp.StatusCode, &errResp)
	}

	var page airtabledomain.ListRecordsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &page, nil
}
