package analyzing

import (
	"context"
	"sync"

	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
)

type snapshotKey struct{}

// snapshot memoriza a leitura de vendas durante uma única requisição. Só uma
// leitura bem-sucedida é memorizada; após uma falha a próxima visão tenta de novo.
type snapshot struct {
	mu      sync.Mutex
	loaded  bool
	records []domain.SalesRecord
	// forced vale mesmo com ANALYTICS_REQUEST_SNAPSHOT desligado
	forced bool
}

// WithSnapshot anexa ao contexto um snapshot vazio. Todas as visões calculadas
// com esse contexto compartilham a mesma leitura do record store.
func WithSnapshot(ctx context.Context) context.Context {
	if snapshotFrom(ctx) != nil {
		return ctx
	}
	return context.WithValue(ctx, snapshotKey{}, &snapshot{})
}

// withForcedSnapshot garante um snapshot que o serviço usa independente da configuração
func withForcedSnapshot(ctx context.Context) context.Context {
	if snap := snapshotFrom(ctx); snap != nil && snap.forced {
		return ctx
	}
	return context.WithValue(ctx, snapshotKey{}, &snapshot{forced: true})
}

func snapshotFrom(ctx context.Context) *snapshot {
	if ctx == nil {
		return nil
	}
	snap, _ := ctx.Value(snapshotKey{}).(*snapshot)
	return snap
}

func (s *snapshot) load(fetch func() ([]domain.SalesRecord, error)) ([]domain.SalesRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.records, nil
	}

	records, err := fetch()
	if err != nil {
		return nil, err
	}

	s.records = records
	s.loaded = true
	return records, nil
}
