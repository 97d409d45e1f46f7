package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectory_PlatformIDs(t *testing.T) {
	d := NewDirectory(map[string]string{
		"recA": "さとふる",
		"recB": "さとふる",
		"recC": "楽天ふるさと納税",
	}, DefaultAgeGroups, DefaultGenders)

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{name: "nome com dois IDs", names: []string{"さとふる"}, want: []string{"recA", "recB"}},
		{name: "repetidos aparecem uma vez", names: []string{"さとふる", "さとふる", "楽天ふるさと納税"}, want: []string{"recA", "recB", "recC"}},
		{name: "nome desconhecido", names: []string{"ANA"}, want: []string{}},
		{name: "sem nomes", names: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.PlatformIDs(tt.names))
		})
	}
}

func TestDirectory_PlatformName(t *testing.T) {
	d := NewDefaultDirectory()

	assert.Equal(t, "さとふる", d.PlatformName("recE2xXek8GyjVaQk"))
	assert.Equal(t, "recDesconhecido", d.PlatformName("recDesconhecido"))
}

func TestDirectory_ReplacePlatforms(t *testing.T) {
	d := NewDefaultDirectory()
	d.ReplacePlatforms(map[string]string{"recNew": "ふるなび"})

	assert.Equal(t, []string{"recNew"}, d.PlatformIDs([]string{"ふるなび"}))
	assert.Empty(t, d.PlatformIDs([]string{"さとふる"}))
	assert.Equal(t, map[string]string{"recNew": "ふるなび"}, d.Platforms())
}

func TestDirectory_AgeAndGender(t *testing.T) {
	d := NewDefaultDirectory()

	assert.Equal(t, []string{"30代", "不明"}, d.AgeGroupIDs([]string{"30代", "不明"}))
	assert.Equal(t, []string{"女性"}, d.GenderIDs([]string{"女性"}))
	assert.Equal(t, DefaultGenders, d.Genders())
	assert.Equal(t, AllAgesLabel, d.AllAgesLabel())

	// cópias não alteram o diretório
	genders := d.Genders()
	genders[0] = "x"
	assert.Equal(t, "男性", d.Genders()[0])
}

func TestAverageOrderValueAndPercentage(t *testing.T) {
	assert.Zero(t, AverageOrderValue(1000, 0))
	assert.Equal(t, 12500.0, AverageOrderValue(25000, 2))
	assert.Zero(t, Percentage(10, 0))
	assert.InDelta(t, 70.0, Percentage(7000, 10000), 1e-9)
}
