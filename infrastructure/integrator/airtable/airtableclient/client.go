package airtableclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	airtabledomain "github.com/vfg2006/furusato-dashboard-api/infrastructure/integrator/airtable/domain"
	"github.com/vfg2006/furusato-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	ListRecords(ctx context.Context, params ListRecordsParams) ([]airtabledomain.Record, error)
}

type AirtableClient struct {
	httpClient *http.Client
	config     *config.Airtable
}

// NewClient cria o cliente HTTP da API do Airtable
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Airtable.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &AirtableClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: &cfg.Airtable,
	}
}
