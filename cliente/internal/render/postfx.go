package render

import (
	"FortressFreecam/cliente/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawPostProcess aplica em 2D os efeitos ativos da camada de pós-processamento.
// Só roda quando a camada existe e está ligada.
func drawPostProcess(cam *scene.Camera) {
	pp := cam.PostProcess
	if pp == nil || !pp.Enabled {
		return
	}

	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	for _, effect := range pp.Settings.ActiveEffects {
		switch effect {
		case "Vignette":
			band := h / 5
			rl.DrawRectangleGradientV(0, 0, w, band, rl.NewColor(0, 0, 0, 140), rl.NewColor(0, 0, 0, 0))
			rl.DrawRectangleGradientV(0, h-band, w, band, rl.NewColor(0, 0, 0, 0), rl.NewColor(0, 0, 0, 140))
		case "Bloom":
			rl.BeginBlendMode(rl.BlendAdditive)
			rl.DrawRectangle(0, 0, w, h, rl.NewColor(40, 35, 20, 255))
			rl.EndBlendMode()
		case "ColorGrading":
			rl.DrawRectangle(0, 0, w, h, rl.NewColor(20, 40, 80, 30))
		}
	}
}
