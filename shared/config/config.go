package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Limites padrão da velocidade de movimento da câmera livre.
const (
	DefaultMinSpeed float32 = 1
	DefaultMaxSpeed float32 = 1000
)

// FreecamConfig agrupa os parâmetros da câmera livre.
type FreecamConfig struct {
	FOV             float32 `yaml:"fov"`
	FarClipPlane    float32 `yaml:"far_clip_plane"`
	PostProcess     bool    `yaml:"post_process"`
	MovementSpeed   float32 `yaml:"movement_speed"`
	MinSpeed        float32 `yaml:"min_speed"`
	MaxSpeed        float32 `yaml:"max_speed"`
	Sensitivity     float32 `yaml:"sensitivity"`
	BoostMult       float32 `yaml:"boost_mult"`
	SpeedChangeMult float32 `yaml:"speed_change_mult"`
	// Se true, a câmera volta para onde estava em vez de ir até o jogador
	RememberPosition bool `yaml:"remember_position"`
	PauseGame        bool `yaml:"pause_game"`
}

// OverlayConfig controla o painel de velocidade.
type OverlayConfig struct {
	HideDelay float32 `yaml:"hide_delay"` // segundos até esconder
	Opacity   float32 `yaml:"opacity"`
	FadeTime  float32 `yaml:"fade_time"`
}

// Keybinds guarda um atalho por controle, pelo nome da tecla ("F9", "W", "LeftShift").
type Keybinds struct {
	Toggle   string `yaml:"toggle"`
	Forward  string `yaml:"forward"`
	Backward string `yaml:"backward"`
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Up       string `yaml:"up"`
	Down     string `yaml:"down"`
	Boost    string `yaml:"boost"`
}

// Config armazena as configurações do visualizador e da câmera livre.
type Config struct {
	// Janela
	WindowWidth  int32  `yaml:"window_width"`
	WindowHeight int32  `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`
	Fullscreen   bool   `yaml:"fullscreen"`
	TargetFPS    int32  `yaml:"target_fps"`

	// Telemetria de pose (vazio desativa)
	ServerURL string `yaml:"server_url"`

	// Diretório do banco SQLite com as poses lembradas
	SaveDir string `yaml:"save_dir"`

	Freecam FreecamConfig `yaml:"freecam"`
	Overlay OverlayConfig `yaml:"overlay"`
	Keys    Keybinds      `yaml:"keys"`

	// Debug
	ShowDebugInfo bool `yaml:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "FortressFreecam",
		Fullscreen:   false,
		TargetFPS:    60,

		ServerURL: "",
		SaveDir:   "saves",

		Freecam: FreecamConfig{
			FOV:              100,
			FarClipPlane:     100000,
			PostProcess:      true,
			MovementSpeed:    20,
			MinSpeed:         DefaultMinSpeed,
			MaxSpeed:         DefaultMaxSpeed,
			Sensitivity:      4,
			BoostMult:        3,
			SpeedChangeMult:  2,
			RememberPosition: false,
			PauseGame:        true,
		},
		Overlay: OverlayConfig{
			HideDelay: 2.5,
			Opacity:   0.95,
			FadeTime:  0.2,
		},
		Keys: Keybinds{
			Toggle:   "F9",
			Forward:  "W",
			Backward: "S",
			Left:     "A",
			Right:    "D",
			Up:       "E",
			Down:     "Q",
			Boost:    "LeftShift",
		},

		ShowDebugInfo: true,
	}
}

// Normalize traz os valores de volta às faixas aceitas pelos sliders.
func (c *Config) Normalize() {
	f := &c.Freecam
	f.FOV = clamp(f.FOV, 50, 150)
	if f.FarClipPlane < 0 {
		f.FarClipPlane = 0
	}
	if f.MinSpeed <= 0 {
		f.MinSpeed = DefaultMinSpeed
	}
	if f.MaxSpeed < f.MinSpeed {
		f.MaxSpeed = f.MinSpeed
	}
	f.MovementSpeed = clamp(f.MovementSpeed, f.MinSpeed, f.MaxSpeed)
	f.Sensitivity = clamp(f.Sensitivity, 1, 20)
	f.BoostMult = clamp(f.BoostMult, 1, 10)
	f.SpeedChangeMult = clamp(f.SpeedChangeMult, 1, 10)

	if c.Overlay.HideDelay < 0 {
		c.Overlay.HideDelay = 0
	}
	c.Overlay.Opacity = clamp(c.Overlay.Opacity, 0, 1)
	if c.Overlay.FadeTime < 0 {
		c.Overlay.FadeTime = 0
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Path retorna o caminho do arquivo de configuração.
func Path() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(filepath.Dir(execDir), "config.yaml")
}

// ErrEmpty indica um arquivo de configuração sem conteúdo.
var ErrEmpty = errors.New("arquivo vazio")

// LoadFrom lê um arquivo YAML por cima dos padrões.
// Campos ausentes no arquivo mantêm o valor padrão.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Editores truncam antes de escrever; arquivo vazio não é "tudo padrão"
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("config: %s: %w", path, ErrEmpty)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// SaveTo salva as configurações em YAML no caminho dado.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
