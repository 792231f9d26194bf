package world

import (
	"testing"

	"FortressFreecam/cliente/internal/camera"
	"FortressFreecam/cliente/internal/input"
	"FortressFreecam/cliente/internal/pause"
	"FortressFreecam/cliente/internal/scene"
	"FortressFreecam/shared/config"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewRegistersPlayerCamera(t *testing.T) {
	stage := scene.NewStage()
	w := New("Demo", stage)

	if stage.Main() != w.Camera {
		t.Fatal("câmera do jogador não é a principal")
	}
	if got := w.Camera.Position; got != (mgl32.Vec3{0, EyeHeight, 0}) {
		t.Errorf("câmera em %v, want altura dos olhos", got)
	}
	r := w.Refs()
	if r.PlayerCamera != w.Camera || r.Origin != w.Anchor || r.LookX == nil || r.LookY == nil {
		t.Errorf("refs incompletas: %+v", r)
	}
}

func TestUpdateWalksOnYaw(t *testing.T) {
	w := New("Demo", scene.NewStage())
	keys := config.DefaultConfig().Keys

	w.LookX.angle = 90
	w.LookY.angle = 60
	w.Update(1, input.Hold(input.Key(keys.Forward)), keys, 0)

	// Olhando para baixo o jogador ainda anda na horizontal
	want := mgl32.Vec3{DefaultWalkSpeed, 0, 0}
	if !w.Body.Position.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("posição = %v, want %v", w.Body.Position, want)
	}
}

func TestUpdateClampsPitch(t *testing.T) {
	w := New("Demo", scene.NewStage())
	keys := config.DefaultConfig().Keys

	w.Update(0.016, &input.Snapshot{DY: -1000}, keys, 4)
	if w.LookY.Angle() != camera.MaxPitch {
		t.Errorf("pitch = %v, want %v", w.LookY.Angle(), camera.MaxPitch)
	}
}

func TestRecenterShiftsEverything(t *testing.T) {
	stage := scene.NewStage()
	w := New("Demo", stage)
	other := scene.NewCamera("Freecam Camera")
	other.Position = mgl32.Vec3{300, 10, 0}
	stage.Add(other)

	w.Body.Position = mgl32.Vec3{100, 0, 0}
	if w.Recenter() {
		t.Fatal("recentralizou antes da distância")
	}

	w.Body.Position = mgl32.Vec3{256, 0, 0}
	w.Camera.Position = mgl32.Vec3{256, EyeHeight, 0}
	if !w.Recenter() {
		t.Fatal("não recentralizou a 256")
	}

	if w.Body.Position != (mgl32.Vec3{}) {
		t.Errorf("jogador em %v, want origem", w.Body.Position)
	}
	if w.Anchor.Position != (mgl32.Vec3{-256, 0, 0}) {
		t.Errorf("âncora em %v, want (-256, 0, 0)", w.Anchor.Position)
	}
	if other.Position != (mgl32.Vec3{44, 10, 0}) {
		t.Errorf("outra câmera em %v, want (44, 10, 0)", other.Position)
	}
	if w.Shifts != 1 {
		t.Errorf("Shifts = %d, want 1", w.Shifts)
	}
}

// A pose lembrada da câmera livre sobrevive à recentralização.
func TestFreecamSurvivesRecenter(t *testing.T) {
	stage := scene.NewStage()
	w := New("Demo", stage)
	cfg := config.DefaultConfig()
	cfg.Freecam.RememberPosition = true

	refs := &scene.Cache{}
	refs.Set(w.Refs())
	fc := camera.New(cfg, camera.Deps{Stage: stage, Refs: refs, Locks: pause.NewService()})

	fc.Enable()
	fc.Camera().Position = mgl32.Vec3{20, 5, -30}
	fc.Disable()

	w.Body.Position = mgl32.Vec3{0, 0, -300}
	w.Recenter()

	fc.Enable()
	want := mgl32.Vec3{20, 5, 270}
	if got := fc.Camera().Position; !got.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("posição = %v, want %v", got, want)
	}
}
