package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// --- Estruturas JSON ---

// Color é uma cor RGBA no JSON.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// PropEntry define a regra que conecta um token de prop à sua aparência
type PropEntry struct {
	Shape   string     `json:"shape"` // "cube", "sphere" ou "cylinder"
	Size    [3]float32 `json:"size"`
	Color   Color      `json:"color"`
	Tokens  []string   `json:"tokens"`
	Comment string     `json:"comment,omitempty"`
}

// Placement é uma instância de prop no layout da cena
type Placement struct {
	Token    string     `json:"token"`
	Position [3]float32 `json:"position"`
}

// PropConfig é o root do props.json
type PropConfig struct {
	Props []PropEntry `json:"props"`
}

// LayoutConfig é o root do layout.json
type LayoutConfig struct {
	Scene      string      `json:"scene"`
	Placements []Placement `json:"placements"`
}

// --- Manager ---

// Manager é o catálogo em memória consultado ao montar a cena de demonstração
type Manager struct {
	props  []PropEntry
	layout LayoutConfig
}

// NewManager carrega props.json e layout.json do diretório.
// Arquivos ausentes caem no catálogo embutido.
func NewManager(configDir string) (*Manager, error) {
	m := &Manager{
		props:  defaultProps(),
		layout: defaultLayout(),
	}

	propData, err := os.ReadFile(filepath.Join(configDir, "props.json"))
	if err == nil {
		var conf PropConfig
		if err := json.Unmarshal(propData, &conf); err != nil {
			return nil, fmt.Errorf("falha ao parsear props.json: %w", err)
		}
		m.props = conf.Props
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("falha ao ler props.json: %w", err)
	}

	layoutData, err := os.ReadFile(filepath.Join(configDir, "layout.json"))
	if err == nil {
		var conf LayoutConfig
		if err := json.Unmarshal(layoutData, &conf); err != nil {
			return nil, fmt.Errorf("falha ao parsear layout.json: %w", err)
		}
		m.layout = conf
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("falha ao ler layout.json: %w", err)
	}

	return m, nil
}

// --- Wildcard Matching ---

// matchToken compara um token de consulta contra um padrão com suporte a wildcards (*)
// Formato do token: "KIND:SIZE:MATERIAL"
// O wildcard '*' em qualquer segmento aceita qualquer valor
func matchToken(pattern, query string) bool {
	if pattern == "*" {
		return true
	}

	patParts := strings.Split(pattern, ":")
	queryParts := strings.Split(query, ":")
	if len(patParts) != len(queryParts) {
		return false
	}

	for i := range patParts {
		if patParts[i] == "*" {
			continue
		}
		if patParts[i] != queryParts[i] {
			return false
		}
	}
	return true
}

// specificityScore conta os segmentos que não são wildcard
func specificityScore(pattern string) int {
	if pattern == "*" {
		return 0
	}
	score := 0
	for _, p := range strings.Split(pattern, ":") {
		if p != "*" {
			score++
		}
	}
	return score
}

// --- Consultas Públicas ---

// GetProp retorna a entrada mais específica para o token, ou nil
func (m *Manager) GetProp(token string) *PropEntry {
	var bestMatch *PropEntry
	bestScore := -1

	for i := range m.props {
		entry := &m.props[i]
		for _, pat := range entry.Tokens {
			if matchToken(pat, token) {
				if score := specificityScore(pat); score > bestScore {
					bestScore = score
					bestMatch = entry
				}
			}
		}
	}
	return bestMatch
}

// Layout retorna o layout da cena carregado
func (m *Manager) Layout() LayoutConfig {
	return m.layout
}

// GetAllProps retorna todas as entradas do catálogo
func (m *Manager) GetAllProps() []PropEntry {
	return m.props
}

func defaultProps() []PropEntry {
	return []PropEntry{
		{Shape: "cube", Size: [3]float32{2, 2, 2}, Color: Color{120, 110, 100, 255}, Tokens: []string{"ROCK:*:*"}},
		{Shape: "cube", Size: [3]float32{6, 4, 6}, Color: Color{90, 85, 80, 255}, Tokens: []string{"ROCK:LARGE:*"}},
		{Shape: "cylinder", Size: [3]float32{0.6, 6, 0.6}, Color: Color{100, 70, 40, 255}, Tokens: []string{"TREE:*:*"}},
		{Shape: "sphere", Size: [3]float32{1, 1, 1}, Color: Color{230, 200, 60, 255}, Tokens: []string{"MARKER:*:*"}},
		{Shape: "cube", Size: [3]float32{1, 1, 1}, Color: Color{200, 40, 200, 255}, Tokens: []string{"*"}, Comment: "fallback"},
	}
}

func defaultLayout() LayoutConfig {
	l := LayoutConfig{Scene: "Demo"}
	// Uma trilha longa para atravessar várias recentralizações da origem
	for i := 0; i < 40; i++ {
		z := float32(-i * 40)
		l.Placements = append(l.Placements,
			Placement{Token: "TREE:TALL:OAK", Position: [3]float32{-12, 0, z}},
			Placement{Token: "TREE:TALL:OAK", Position: [3]float32{12, 0, z - 20}},
		)
		if i%4 == 0 {
			l.Placements = append(l.Placements, Placement{Token: "ROCK:LARGE:GRANITE", Position: [3]float32{30, 0, z}})
		}
		if i%10 == 0 {
			l.Placements = append(l.Placements, Placement{Token: "MARKER:SMALL:GOLD", Position: [3]float32{0, 8, z}})
		}
	}
	return l
}
