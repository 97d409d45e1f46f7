package domain

import (
	"sort"
	"sync"
)

// Valores padrão das tabelas de resolução, iguais aos cadastrados no Airtable
var (
	DefaultPlatforms = map[string]string{
		"rec5y6uYA61ufVnPY": "ふるさとチョイス",
		"recE2xXek8GyjVaQk": "さとふる",
		"recdIdd4rOYpkcaSB": "楽天ふるさと納税",
	}

	DefaultAgeGroups = []string{"20代", "30代", "40代", "50代", "60代", "70代以上"}

	DefaultGenders = []string{"男性", "女性"}
)

// AllAgesLabel é o rótulo usado na análise de clientes, que não separa por idade
const AllAgesLabel = "全体"

// Directory guarda as tabelas de resolução nome <-> ID usadas pelos filtros.
// Plataformas são vinculadas por ID de registro; faixa etária e gênero ainda
// são gravados pelo próprio nome, então seus mapas são identidades.
type Directory struct {
	mu                sync.RWMutex
	platformNameByID  map[string]string
	platformIDsByName map[string][]string
	ageGroupByName    map[string]string
	genderByName      map[string]string
	genders           []string
	allAgesLabel      string
}

// NewDirectory monta as tabelas a partir dos pares id -> nome de plataforma e
// das listas de faixas etárias e gêneros
func NewDirectory(platforms map[string]string, ageGroups, genders []string) *Directory {
	d := &Directory{
		ageGroupByName: identity(ageGroups),
		genderByName:   identity(genders),
		genders:        append([]string(nil), genders...),
		allAgesLabel:   AllAgesLabel,
	}
	d.setPlatforms(platforms)

	return d
}

// NewDefaultDirectory usa os valores padrão do dashboard
func NewDefaultDirectory() *Directory {
	return NewDirectory(DefaultPlatforms, DefaultAgeGroups, DefaultGenders)
}

func identity(values []string) map[string]string {
	m := make(map[string]string, len(values))
	for _, v := range values {
		m[v] = v
	}
	return m
}

func (d *Directory) setPlatforms(platforms map[string]string) {
	nameByID := make(map[string]string, len(platforms))
	idsByName := make(map[string][]string, len(platforms))

	ids := make([]string, 0, len(platforms))
	for id := range platforms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		name := platforms[id]
		nameByID[id] = name
		idsByName[name] = append(idsByName[name], id)
	}

	d.platformNameByID = nameByID
	d.platformIDsByName = idsByName
}

// ReplacePlatforms troca todos os pares de plataforma de uma vez
func (d *Directory) ReplacePlatforms(platforms map[string]string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.setPlatforms(platforms)
}

// PlatformIDs resolve nomes de exibição para IDs. Nomes desconhecidos são
// descartados e IDs repetidos aparecem uma única vez.
func (d *Directory) PlatformIDs(names []string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		for _, id := range d.platformIDsByName[name] {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids
}

// PlatformName devolve o nome de exibição, ou o próprio ID quando não mapeado
func (d *Directory) PlatformName(id string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if name, ok := d.platformNameByID[id]; ok {
		return name
	}
	return id
}

// Platforms devolve uma cópia dos pares id -> nome
func (d *Directory) Platforms() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]string, len(d.platformNameByID))
	for id, name := range d.platformNameByID {
		out[id] = name
	}
	return out
}

// AgeGroupIDs traduz os nomes de faixa etária, mantendo o nome quando não há mapeamento
func (d *Directory) AgeGroupIDs(names []string) []string {
	return translate(names, d.ageGroupByName)
}

// GenderIDs traduz os nomes de gênero, mantendo o nome quando não há mapeamento
func (d *Directory) GenderIDs(names []string) []string {
	return translate(names, d.genderByName)
}

func translate(names []string, table map[string]string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		if id, ok := table[name]; ok {
			ids = append(ids, id)
			continue
		}
		ids = append(ids, name)
	}
	return ids
}

// Genders lista os gêneros usados como grupos da análise de clientes
func (d *Directory) Genders() []string {
	return append([]string(nil), d.genders...)
}

func (d *Directory) AllAgesLabel() string {
	return d.allAgesLabel
}
