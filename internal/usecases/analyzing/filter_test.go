package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
)

func sampleRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{ID: "rec1", Name: "SF2024010001", UserID: "u1", ProductName: "ホタテ", Category: "魚介類", Amount: 10000, OrderDate: "2024-01-01", Prefecture: "北海道", AgeGroup: "30代", Gender: "男性", PlatformCategory: []string{"rec5y6uYA61ufVnPY"}},
		{ID: "rec2", Name: "SF2024010002", UserID: "u2", ProductName: "和牛", Category: "肉類", Amount: 15000, OrderDate: "2024-01-02", Prefecture: "宮崎県", AgeGroup: "40代", Gender: "女性", PlatformCategory: []string{"recE2xXek8GyjVaQk"}},
		{ID: "rec3", Name: "SF2024010003", UserID: "u1", ProductName: "和牛", Category: "肉類", Amount: 20000, OrderDate: "2024-01-03", Prefecture: "宮崎県", AgeGroup: "30代", Gender: "男性", PlatformCategory: []string{"rec5y6uYA61ufVnPY", "recdIdd4rOYpkcaSB"}},
		{ID: "rec4", Name: "SF2024010004", UserID: "u3", ProductName: "米", Category: "穀物", Amount: 5000, OrderDate: "", Prefecture: "新潟県", AgeGroup: "", Gender: "", PlatformCategory: []string{}},
	}
}

func ids(records []domain.SalesRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestApplyFilter(t *testing.T) {
	dir := domain.NewDefaultDirectory()

	tests := []struct {
		name   string
		filter *domain.FilterSpec
		want   []string
	}{
		{
			name:   "Sem filtro devolve todos os registros",
			filter: nil,
			want:   []string{"rec1", "rec2", "rec3", "rec4"},
		},
		{
			name:   "Intervalo de um dia inclui os limites e mantém data inválida",
			filter: &domain.FilterSpec{StartDate: "2024-01-01", EndDate: "2024-01-01"},
			want:   []string{"rec1", "rec4"},
		},
		{
			name:   "Apenas data inicial",
			filter: &domain.FilterSpec{StartDate: "2024-01-02"},
			want:   []string{"rec2", "rec3", "rec4"},
		},
		{
			name:   "Limite inválido não restringe",
			filter: &domain.FilterSpec{StartDate: "not-a-date"},
			want:   []string{"rec1", "rec2", "rec3", "rec4"},
		},
		{
			name:   "Plataforma resolvida pelo nome",
			filter: &domain.FilterSpec{Platforms: []string{"ふるさとチョイス"}},
			want:   []string{"rec1", "rec3"},
		},
		{
			name:   "Plataforma desconhecida não deixa nenhum registro passar",
			filter: &domain.FilterSpec{Platforms: []string{"Unknown"}},
			want:   []string{},
		},
		{
			name:   "Faixa etária e gênero combinados",
			filter: &domain.FilterSpec{AgeGroups: []string{"30代"}, Genders: []string{"男性"}},
			want:   []string{"rec1", "rec3"},
		},
		{
			name:   "Dimensões combinadas com AND",
			filter: &domain.FilterSpec{EndDate: "2024-01-02", Genders: []string{"女性"}},
			want:   []string{"rec2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(sampleRecords(), tt.filter, dir)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyFilter_IsIdempotent(t *testing.T) {
	dir := domain.NewDefaultDirectory()
	filter := &domain.FilterSpec{StartDate: "2024-01-02", Platforms: []string{"ふるさとチョイス", "さとふる"}}

	once := ApplyFilter(sampleRecords(), filter, dir)
	twice := ApplyFilter(once, filter, dir)

	assert.Equal(t, once, twice)
}

func TestApplyFilter_DoesNotShareBackingArray(t *testing.T) {
	records := sampleRecords()
	got := ApplyFilter(records, nil, domain.NewDefaultDirectory())

	got[0].Amount = 1
	assert.Equal(t, int64(10000), records[0].Amount)
}

func TestMatches_Timestamps(t *testing.T) {
	dir := domain.NewDefaultDirectory()
	filter := &domain.FilterSpec{StartDate: "2024-01-01", EndDate: "2024-01-01"}

	assert.True(t, Matches(domain.SalesRecord{OrderDate: "2024-01-01T23:10:00"}, filter, dir))
	assert.True(t, Matches(domain.SalesRecord{OrderDate: "2024-01-01T08:00:00+09:00"}, filter, dir))
	assert.False(t, Matches(domain.SalesRecord{OrderDate: "2024-01-02T00:00:00Z"}, filter, dir))
	assert.False(t, Matches(domain.SalesRecord{OrderDate: "2023-12-31"}, filter, dir))
}

func TestMatches_NilDirectoryUsesDefaults(t *testing.T) {
	record := domain.SalesRecord{PlatformCategory: []string{"recE2xXek8GyjVaQk"}}

	assert.True(t, Matches(record, &domain.FilterSpec{Platforms: []string{"さとふる"}}, nil))
}
