package freecam

import (
	"errors"
	"testing"

	"FortressFreecam/cliente/internal/input"
	"FortressFreecam/cliente/internal/pause"
	"FortressFreecam/cliente/internal/scene"
	"FortressFreecam/shared/config"
	"FortressFreecam/shared/posedata"

	"github.com/go-gl/mathgl/mgl32"
)

type axis float32

func (a axis) Angle() float32 { return float32(a) }

type memStore struct {
	poses   map[string]posedata.Pose
	saves   int
	loadErr error
}

func newMemStore() *memStore {
	return &memStore{poses: make(map[string]posedata.Pose)}
}

func (m *memStore) SavePose(scene string, p posedata.Pose) error {
	m.saves++
	m.poses[scene] = p
	return nil
}

func (m *memStore) LoadPose(scene string) (posedata.Pose, bool, error) {
	if m.loadErr != nil {
		return posedata.Pose{}, false, m.loadErr
	}
	p, ok := m.poses[scene]
	return p, ok, nil
}

type panel struct{ shows, hides int }

func (p *panel) Show()               { p.shows++ }
func (p *panel) Hide()               { p.hides++ }
func (p *panel) SetText(_, _ string) {}

type fixture struct {
	cfg    *config.Config
	stage  *scene.Stage
	locks  *pause.Service
	store  *memStore
	panel  *panel
	player *scene.Camera
	anchor *scene.Anchor
	p      *Plugin
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		cfg:   config.DefaultConfig(),
		stage: scene.NewStage(),
		locks: pause.NewService(),
		store: newMemStore(),
		panel: &panel{},
	}
	f.player = scene.NewCamera("Player Camera")
	f.player.Enabled = true
	f.player.Position = mgl32.Vec3{1, 2, 3}
	f.stage.Add(f.player)
	f.anchor = &scene.Anchor{Name: "Origin", Position: mgl32.Vec3{50, 0, 0}}

	f.p = New(f.cfg, f.stage, f.locks, f.store)
	f.p.OnUIReady(f.panel)
	return f
}

func (f *fixture) refs(name string) scene.Refs {
	return scene.Refs{
		Scene:        name,
		LookX:        axis(0),
		LookY:        axis(0),
		PlayerCamera: f.player,
		Origin:       f.anchor,
	}
}

func TestOnUIReadyCreatesOnce(t *testing.T) {
	f := newFixture(t)
	first := f.p.Camera()
	if first == nil || f.p.Overlay() == nil {
		t.Fatal("OnUIReady não criou câmera e overlay")
	}

	f.p.OnUIReady(&panel{})
	if f.p.Camera() != first {
		t.Error("segunda chamada de OnUIReady recriou a câmera")
	}
	if n := len(f.stage.Cameras()); n != 2 {
		t.Errorf("palco tem %d câmeras, want 2", n)
	}
}

func TestTickBeforeUIReady(t *testing.T) {
	p := New(config.DefaultConfig(), scene.NewStage(), pause.NewService(), nil)
	p.Tick(0.016, &input.Snapshot{Pressed: map[input.Key]bool{"F9": true}})
	p.ApplyConfig(config.DefaultConfig())
	if err := p.Close(); err != nil {
		t.Errorf("Close antes da UI: %v", err)
	}
}

func TestToggleKey(t *testing.T) {
	f := newFixture(t)
	f.p.OnSceneReady(f.refs("Peak"))

	press := &input.Snapshot{Pressed: map[input.Key]bool{input.Key(f.cfg.Keys.Toggle): true}}

	f.p.Tick(0.016, press)
	if !f.p.Camera().Active() {
		t.Fatal("atalho não ativou a câmera livre")
	}
	f.p.Tick(0.016, press)
	if f.p.Camera().Active() || !f.player.Enabled {
		t.Fatal("atalho não devolveu a câmera do jogador")
	}
}

func TestToggleWithoutPauseService(t *testing.T) {
	cfg := config.DefaultConfig()
	stage := scene.NewStage()
	player := scene.NewCamera("Player Camera")
	player.Enabled = true
	stage.Add(player)

	p := New(cfg, stage, nil, nil)
	p.OnUIReady(&panel{})
	p.OnSceneReady(scene.Refs{
		Scene:        "Peak",
		LookX:        axis(0),
		LookY:        axis(0),
		PlayerCamera: player,
		Origin:       &scene.Anchor{Name: "Origin"},
	})

	press := &input.Snapshot{Pressed: map[input.Key]bool{input.Key(cfg.Keys.Toggle): true}}
	p.Tick(0.016, press)
	if !p.Camera().Active() || p.Camera().PauseHeld() {
		t.Fatal("câmera deveria ativar sem trava de pausa")
	}
	p.Tick(0.016, input.Hold(input.Key(cfg.Keys.Forward)))
	p.Tick(0.016, press)
	if p.Camera().Active() || !player.Enabled {
		t.Error("atalho não devolveu a câmera do jogador")
	}
}

func TestTickHidesOverlay(t *testing.T) {
	f := newFixture(t)
	f.p.OnSceneReady(f.refs("Peak"))
	f.p.Camera().Enable()

	f.p.Tick(0.016, &input.Snapshot{Wheel: 1})
	if f.panel.shows != 1 {
		t.Fatalf("overlay mostrado %d vezes, want 1", f.panel.shows)
	}
	for i := 0; i < 30; i++ {
		f.p.Tick(0.1, &input.Snapshot{})
	}
	if f.panel.hides != 1 {
		t.Errorf("overlay escondido %d vezes, want 1", f.panel.hides)
	}
}

func TestSceneLifecyclePersistsPose(t *testing.T) {
	f := newFixture(t)
	f.cfg.Freecam.RememberPosition = true
	f.p.OnSceneReady(f.refs("Peak"))

	fc := f.p.Camera()
	fc.Enable()
	fc.Camera().Position = mgl32.Vec3{60, 5, 5}
	fc.LookAt(45, 10)

	f.p.OnSceneTeardown()
	if fc.Active() {
		t.Error("câmera continua ativa depois do teardown")
	}
	if f.locks.Paused() {
		t.Error("trava de pausa vazou no teardown")
	}
	if _, ok := fc.RememberedOffset(); ok {
		t.Error("pose lembrada sobreviveu ao teardown")
	}
	saved, ok := f.store.poses["Peak"]
	if !ok {
		t.Fatal("pose não foi salva")
	}
	if want := (mgl32.Vec3{10, 5, 5}); !saved.Position.ApproxEqual(want) {
		t.Errorf("pose salva = %v, want offset %v", saved.Position, want)
	}
	if f.p.Refs().PlayerCamera != nil {
		t.Error("referências não foram limpas")
	}

	// Cena recarregada com a origem deslocada
	f.anchor.Position = mgl32.Vec3{-200, 0, 0}
	f.p.OnSceneReady(f.refs("Peak"))
	fc.Enable()
	if got, want := fc.Camera().Position, (mgl32.Vec3{-190, 5, 5}); !got.ApproxEqual(want) {
		t.Errorf("posição restaurada = %v, want %v", got, want)
	}
	if yaw, pitch := fc.Angles(); yaw != 45 || pitch != 10 {
		t.Errorf("ângulos restaurados = (%v, %v), want (45, 10)", yaw, pitch)
	}
}

func TestOnSceneReadyLoadError(t *testing.T) {
	f := newFixture(t)
	f.store.loadErr = errors.New("disco cheio")

	f.p.OnSceneReady(f.refs("Peak"))
	if _, ok := f.p.Camera().RememberedOffset(); ok {
		t.Error("erro de leitura produziu uma pose lembrada")
	}
	if f.p.Refs().Scene != "Peak" {
		t.Error("referências não foram guardadas")
	}
}

func TestApplyConfig(t *testing.T) {
	f := newFixture(t)
	f.p.OnSceneReady(f.refs("Peak"))
	cam := f.p.Camera().Camera()

	next := *f.cfg
	next.Freecam.FOV = 70
	next.Freecam.FarClipPlane = 500
	next.Freecam.PostProcess = false
	f.p.ApplyConfig(&next)

	if cam.FieldOfView != 70 || cam.FarClipPlane != 500 || cam.PostProcess.Enabled {
		t.Errorf("hooks não aplicados com a câmera inativa: fov=%v far=%v pp=%v",
			cam.FieldOfView, cam.FarClipPlane, cam.PostProcess.Enabled)
	}
	if f.cfg.Freecam.FOV != 70 {
		t.Error("configuração compartilhada não foi atualizada")
	}

	f.p.Camera().Enable()
	if !f.locks.Paused() {
		t.Fatal("ativação não pausou")
	}
	next.Freecam.PauseGame = false
	f.p.ApplyConfig(&next)
	if f.locks.Paused() || f.p.Camera().PauseHeld() {
		t.Error("desligar pause_game não liberou a trava")
	}
	next.Freecam.PauseGame = true
	f.p.ApplyConfig(&next)
	if f.locks.Count(pause.ModePause) != 1 {
		t.Errorf("travas de pausa = %d, want 1", f.locks.Count(pause.ModePause))
	}
}

func TestApplyConfigKeepsScrolledSpeed(t *testing.T) {
	f := newFixture(t)
	f.p.OnSceneReady(f.refs("Peak"))
	f.p.Camera().Enable()

	file := *f.cfg
	base := file.Freecam.MovementSpeed
	f.p.Tick(0.016, &input.Snapshot{Wheel: 1})
	scrolled := f.cfg.Freecam.MovementSpeed
	if scrolled == base {
		t.Fatalf("scroll não mudou a velocidade (%v)", scrolled)
	}

	// Só o fov mudou no arquivo
	next := file
	next.Freecam.FOV = 80
	f.p.ApplyConfig(&next)
	if f.cfg.Freecam.MovementSpeed != scrolled {
		t.Errorf("velocidade = %v, want %v do scroll", f.cfg.Freecam.MovementSpeed, scrolled)
	}

	// Agora o arquivo muda movement_speed
	next.Freecam.MovementSpeed = 42
	f.p.ApplyConfig(&next)
	if f.cfg.Freecam.MovementSpeed != 42 {
		t.Errorf("velocidade = %v, want 42 do arquivo", f.cfg.Freecam.MovementSpeed)
	}

	// Nova faixa no arquivo ainda limita a velocidade mantida
	next.Freecam.MaxSpeed = 30
	f.p.ApplyConfig(&next)
	if f.cfg.Freecam.MovementSpeed != 30 {
		t.Errorf("velocidade = %v, want 30 (máximo novo)", f.cfg.Freecam.MovementSpeed)
	}
}

func TestTelemetryFrame(t *testing.T) {
	f := newFixture(t)
	f.p.OnSceneReady(f.refs("Peak"))

	if _, ok := f.p.TelemetryFrame(0); ok {
		t.Fatal("quadro enviado com a câmera inativa")
	}

	f.p.Camera().Enable()
	f.p.Camera().Camera().Position = mgl32.Vec3{60, 5, 5}
	frame, ok := f.p.TelemetryFrame(1)
	if !ok || !frame.Active || !frame.OriginKnown {
		t.Fatalf("primeiro quadro ativo = %+v, %v", frame, ok)
	}
	if frame.Scene != "Peak" || frame.X != 10 || frame.Speed != f.cfg.Freecam.MovementSpeed {
		t.Errorf("quadro = %+v, want cena Peak com offset x=10", frame)
	}
	if _, ok := f.p.TelemetryFrame(1.05); ok {
		t.Error("quadro antes do intervalo")
	}
	if _, ok := f.p.TelemetryFrame(1.2); !ok {
		t.Error("nenhum quadro depois do intervalo")
	}

	// Desligar gera um único quadro inativo, mesmo dentro do intervalo
	f.p.Camera().Disable()
	frame, ok = f.p.TelemetryFrame(1.21)
	if !ok || frame.Active {
		t.Fatalf("quadro de desativação = %+v, %v", frame, ok)
	}
	if _, ok := f.p.TelemetryFrame(2); ok {
		t.Error("quadros continuam com a câmera inativa")
	}
}

func TestCloseSavesPose(t *testing.T) {
	f := newFixture(t)
	f.p.OnSceneReady(f.refs("Peak"))
	f.p.Camera().Enable()

	if err := f.p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if f.store.saves != 1 {
		t.Errorf("saves = %d, want 1", f.store.saves)
	}
	if f.p.Camera().Active() || f.locks.Paused() {
		t.Error("Close não desativou a câmera")
	}
}
