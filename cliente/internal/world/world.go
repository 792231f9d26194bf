// Package world é a cena de demonstração do visualizador: um jogador que anda,
// a câmera dele e a âncora de origem flutuante que recentraliza o mundo.
package world

import (
	"log"

	"FortressFreecam/cliente/internal/camera"
	"FortressFreecam/cliente/internal/input"
	"FortressFreecam/cliente/internal/scene"
	"FortressFreecam/shared/config"
	"FortressFreecam/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Padrões da cena
const (
	DefaultRecenterDistance float32 = 256
	DefaultWalkSpeed        float32 = 8
	EyeHeight               float32 = 1.6
)

// Axis é um controlador de olhar do jogador.
type Axis struct {
	angle float32
}

// Angle implementa scene.LookAxis.
func (a *Axis) Angle() float32 { return a.angle }

// World guarda os objetos da cena atual.
type World struct {
	Name   string
	Stage  *scene.Stage
	Body   *scene.Body
	Camera *scene.Camera
	Anchor *scene.Anchor
	LookX  *Axis
	LookY  *Axis

	RecenterDistance float32
	WalkSpeed        float32

	// Quantas vezes a origem foi recentralizada
	Shifts int
}

// New cria a cena e registra a câmera do jogador no palco como principal.
func New(name string, stage *scene.Stage) *World {
	cam := scene.NewCamera("Player Camera")
	cam.Enabled = true
	cam.RenderPath = scene.RenderPathDeferred
	cam.PostProcess = &scene.PostProcessLayer{
		Enabled: true,
		Settings: scene.PostProcessSettings{
			ActiveEffects: []string{"Vignette", "ColorGrading"},
			Antialiasing:  scene.AntialiasingFXAA,
			VolumeLayer:   1 << 2,
		},
	}

	w := &World{
		Name:             name,
		Stage:            stage,
		Body:             &scene.Body{Name: "Player"},
		Camera:           cam,
		Anchor:           &scene.Anchor{Name: "WorldOrigin"},
		LookX:            &Axis{},
		LookY:            &Axis{},
		RecenterDistance: DefaultRecenterDistance,
		WalkSpeed:        DefaultWalkSpeed,
	}
	stage.Add(cam)
	w.syncCamera()
	return w
}

// Refs retorna as referências que o plugin da câmera livre consome.
func (w *World) Refs() scene.Refs {
	return scene.Refs{
		Scene:        w.Name,
		PlayerBody:   w.Body,
		LookX:        w.LookX,
		LookY:        w.LookY,
		PlayerCamera: w.Camera,
		Origin:       w.Anchor,
	}
}

// OriginPosition implementa util.OriginRef.
func (w *World) OriginPosition() (mgl32.Vec3, bool) {
	if w == nil || w.Anchor == nil {
		return mgl32.Vec3{}, false
	}
	return w.Anchor.Position, true
}

func (w *World) syncCamera() {
	w.Camera.Position = w.Body.Position.Add(mgl32.Vec3{0, EyeHeight, 0})
	w.Camera.Rotation = camera.Orientation(w.LookX.angle, w.LookY.angle)
}

// Update anda com o jogador e gira a cabeça. O chamador decide se o
// jogador pode se mexer (sem pausa e sem câmera livre).
func (w *World) Update(dt float32, in input.Source, keys config.Keybinds, sensitivity float32) {
	if in == nil {
		return
	}

	dx, dy := in.LookDelta()
	w.LookX.angle += dx * sensitivity
	w.LookY.angle = util.Clamp(w.LookY.angle-dy*sensitivity, camera.MinPitch, camera.MaxPitch)

	var right, forward float32
	if in.KeyDown(input.Key(keys.Forward)) {
		forward++
	}
	if in.KeyDown(input.Key(keys.Backward)) {
		forward--
	}
	if in.KeyDown(input.Key(keys.Left)) {
		right--
	}
	if in.KeyDown(input.Key(keys.Right)) {
		right++
	}

	if right != 0 || forward != 0 {
		// Anda no plano horizontal, só com o yaw
		yawOnly := camera.Orientation(w.LookX.angle, 0)
		step := mgl32.Vec3{right, 0, -forward}.Normalize().Mul(w.WalkSpeed * dt)
		w.Body.Position = w.Body.Position.Add(yawOnly.Rotate(step))
	}

	w.syncCamera()
	w.Recenter()
}

// Recenter desloca o mundo inteiro quando o jogador se afasta demais da
// origem do motor. Todas as câmeras do palco e a âncora andam junto, então
// posições relativas à âncora continuam válidas.
func (w *World) Recenter() bool {
	if w.RecenterDistance <= 0 {
		return false
	}
	p := w.Body.Position
	horizontal := mgl32.Vec3{p.X(), 0, p.Z()}
	if horizontal.Len() < w.RecenterDistance {
		return false
	}

	shift := horizontal.Mul(-1)
	w.Body.Position = w.Body.Position.Add(shift)
	w.Anchor.Position = w.Anchor.Position.Add(shift)
	for _, c := range w.Stage.Cameras() {
		c.Position = c.Position.Add(shift)
	}
	w.Shifts++

	log.Printf("[World] Origem recentralizada (%d): deslocamento %v, âncora em %v", w.Shifts, shift, w.Anchor.Position)
	return true
}
