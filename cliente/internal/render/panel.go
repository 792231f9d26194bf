package render

import (
	"FortressFreecam/shared/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Dimensões do painel de velocidade, no topo central da tela
const (
	panelWidth  int32 = 300
	panelHeight int32 = 100
	panelTop    int32 = 200
)

// Panel é o painel de velocidade desenhado com raylib.
// Aparece e some com fade de cfg.Overlay.FadeTime segundos.
type Panel struct {
	cfg   *config.Config
	speed string
	boost string
	shown bool
	alpha float32
}

// NewPanel cria o painel invisível.
func NewPanel(cfg *config.Config) *Panel {
	return &Panel{cfg: cfg}
}

func (p *Panel) Show() { p.shown = true }
func (p *Panel) Hide() { p.shown = false }

func (p *Panel) SetText(speed, boost string) {
	p.speed, p.boost = speed, boost
}

// Update avança o fade.
func (p *Panel) Update(dt float32) {
	target := float32(0)
	if p.shown {
		target = p.cfg.Overlay.Opacity
	}

	fade := p.cfg.Overlay.FadeTime
	if fade <= 0 {
		p.alpha = target
		return
	}
	step := dt / fade * p.cfg.Overlay.Opacity

	switch {
	case p.alpha < target:
		p.alpha = min(p.alpha+step, target)
	case p.alpha > target:
		p.alpha = max(p.alpha-step, target)
	}
}

// Draw desenha o painel se ainda estiver visível.
func (p *Panel) Draw() {
	if p.alpha <= 0 {
		return
	}

	x := (int32(rl.GetScreenWidth()) - panelWidth) / 2
	y := panelTop

	rl.DrawRectangle(x, y, panelWidth, panelHeight, rl.Fade(rl.NewColor(20, 20, 30, 255), p.alpha))
	rl.DrawRectangleLines(x, y, panelWidth, panelHeight, rl.Fade(rl.NewColor(80, 80, 100, 255), p.alpha))

	const size = 24
	sw := rl.MeasureText(p.speed, size)
	rl.DrawText(p.speed, x+(panelWidth-sw)/2, y+18, size, rl.Fade(rl.White, p.alpha))
	bw := rl.MeasureText(p.boost, size)
	rl.DrawText(p.boost, x+(panelWidth-bw)/2, y+58, size, rl.Fade(rl.Gold, p.alpha))
}
