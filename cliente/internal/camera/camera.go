// Package camera implementa a câmera livre: uma câmera destacável que assume
// o lugar da câmera do jogador, voa de forma independente e devolve o
// controle quando desativada.
package camera

import (
	"log"

	"FortressFreecam/cliente/internal/input"
	"FortressFreecam/cliente/internal/pause"
	"FortressFreecam/cliente/internal/scene"
	"FortressFreecam/shared/config"
	"FortressFreecam/shared/posedata"
	"FortressFreecam/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Limites do olhar vertical, em graus.
const (
	MinPitch float32 = -89
	MaxPitch float32 = 89
)

// Debug liga mensagens extras de diagnóstico.
var Debug = false

func logDebug(format string, args ...any) {
	if Debug {
		log.Printf("[Freecam] "+format, args...)
	}
}

// Locker abre travas de pausa.
type Locker interface {
	Acquire(mode pause.Mode) *pause.Handle
}

// Notifier é avisado quando a velocidade muda.
type Notifier interface {
	Show()
}

// InputGate suspende os controles enquanto alguma interface captura o ponteiro.
type InputGate interface {
	InputCaptured() bool
}

// Deps são os colaboradores da câmera livre, todos opcionais exceto Stage e Refs.
type Deps struct {
	Stage   *scene.Stage
	Refs    *scene.Cache
	Locks   Locker
	Overlay Notifier
	Gate    InputGate
}

// FreeCamera é a câmera livre. Existe uma por processo, criada quando a UI do
// host fica pronta, e vive até o fim da aplicação.
type FreeCamera struct {
	cam      *scene.Camera
	cfg      *config.Config
	stage    *scene.Stage
	refs     *scene.Cache
	locks    Locker
	notifier Notifier
	gate     InputGate

	// Trava de pausa aberta durante a sessão ativa (nil fora dela)
	lock *pause.Handle

	// Câmera que estava ativa antes da troca
	previous *scene.Camera

	// Ângulos atuais em graus; pitch sempre dentro de [MinPitch, MaxPitch]
	yaw   float32
	pitch float32

	// Última pose ao desativar, relativa à âncora de origem
	remembered    posedata.Pose
	hasRemembered bool
}

// New cria a câmera livre desativada, registra no palco e aplica os padrões
// de fov, far clip e pós-processamento.
func New(cfg *config.Config, d Deps) *FreeCamera {
	cam := scene.NewCamera("Freecam Camera")
	cam.PostProcess = &scene.PostProcessLayer{}

	fc := &FreeCamera{
		cam:      cam,
		cfg:      cfg,
		stage:    d.Stage,
		refs:     d.Refs,
		locks:    d.Locks,
		notifier: d.Overlay,
		gate:     d.Gate,
	}
	fc.stage.Add(cam)

	fc.UpdateFieldOfView(cfg.Freecam.FOV)
	fc.UpdateFarClipPlane(cfg.Freecam.FarClipPlane)
	fc.UpdatePostProcessEnabled(cfg.Freecam.PostProcess)
	fc.LookAt(0, 0)
	return fc
}

// Camera retorna a câmera de cena controlada.
func (fc *FreeCamera) Camera() *scene.Camera {
	if fc == nil {
		return nil
	}
	return fc.cam
}

// Active informa se a câmera livre é a câmera principal agora.
func (fc *FreeCamera) Active() bool {
	return fc != nil && fc.cam != nil && fc.stage.Main() == fc.cam
}

// PauseHeld informa se a sessão atual segura a trava de pausa.
func (fc *FreeCamera) PauseHeld() bool {
	return fc != nil && fc.lock.Held()
}

func (fc *FreeCamera) converter() util.Converter {
	return util.NewConverter(fc.refs)
}

// UpdateFieldOfView aplica o fov imediatamente, ativa ou não.
func (fc *FreeCamera) UpdateFieldOfView(v float32) {
	if fc == nil || fc.cam == nil {
		return
	}
	fc.cam.FieldOfView = v
}

// UpdateFarClipPlane aplica o far clip imediatamente, ativa ou não.
func (fc *FreeCamera) UpdateFarClipPlane(v float32) {
	if fc == nil || fc.cam == nil {
		return
	}
	fc.cam.FarClipPlane = v
}

// UpdatePostProcessEnabled liga ou desliga o pós-processamento da câmera livre.
func (fc *FreeCamera) UpdatePostProcessEnabled(use bool) {
	if fc == nil || fc.cam == nil || fc.cam.PostProcess == nil {
		return
	}
	fc.cam.PostProcess.Enabled = use
}

// copyPostProcessing copia os ajustes visuais da câmera do jogador.
func (fc *FreeCamera) copyPostProcessing() {
	player := fc.refs.PlayerCamera
	if player == nil {
		return
	}
	if !scene.CopyVisuals(fc.cam, player) {
		logDebug("Câmera %q sem pós-processamento, nada copiado", player.Name)
	}
}

// goToPlayer vai para a posição e orientação atuais do jogador.
func (fc *FreeCamera) goToPlayer() {
	fc.cam.Position = fc.refs.PlayerCamera.Position
	fc.LookAt(fc.refs.LookX.Angle(), fc.refs.LookY.Angle())
}

// goToRemembered volta para a última pose, convertida para o espaço atual.
func (fc *FreeCamera) goToRemembered() {
	pos, ok := fc.converter().ToAbsolute(fc.remembered.Position)
	if !ok {
		log.Printf("[Freecam] Âncora de origem não encontrada, a posição pode ficar errada")
	}
	fc.cam.Position = pos
	fc.LookAt(fc.remembered.Yaw, fc.remembered.Pitch)
}

// remember guarda a pose atual relativa à âncora de origem.
func (fc *FreeCamera) remember() {
	pose, ok := fc.OffsetPose()
	if !ok {
		log.Printf("[Freecam] Âncora de origem não encontrada, a posição pode ficar errada")
	}
	fc.remembered = pose
	fc.hasRemembered = true
}

// Enable ativa a câmera livre no lugar da câmera do jogador.
// Falhas de pré-condição só são registradas no log e não mudam o estado.
func (fc *FreeCamera) Enable() {
	if fc == nil || fc.cam == nil {
		return
	}

	r := fc.refs
	if r.LookX == nil || r.LookY == nil || r.PlayerCamera == nil {
		log.Printf("[Freecam] Não foi possível ativar: a câmera do jogador parece não existir nesta cena")
		return
	}

	main := fc.stage.Main()
	if main != r.PlayerCamera {
		log.Printf("[Freecam] Não foi possível ativar: a câmera principal atual não é a do jogador")
		return
	}

	logDebug("Trocando da câmera antiga: %s", main.Name)

	// Trava de pausa, uma por sessão
	if fc.cfg.Freecam.PauseGame && fc.lock == nil && fc.locks != nil {
		fc.lock = fc.locks.Acquire(pause.ModePause)
	}

	fc.copyPostProcessing()

	if fc.cfg.Freecam.RememberPosition && fc.hasRemembered {
		fc.goToRemembered()
	} else {
		fc.goToPlayer()
	}

	fc.previous = main
	main.Enabled = false
	fc.cam.Enabled = true

	log.Printf("[Freecam] Ativada em %v", fc.cam.Position)
}

// Disable devolve o controle para a câmera anterior.
// Chamar com a câmera já desativada não tem efeito.
func (fc *FreeCamera) Disable() {
	if !fc.Active() {
		logDebug("Já desativada")
		return
	}

	fc.remember()

	if fc.lock != nil {
		fc.lock.Release()
		fc.lock = nil
	}

	fc.cam.Enabled = false

	if fc.previous != nil && fc.stage.Contains(fc.previous) {
		fc.previous.Enabled = true
	}
	fc.previous = nil

	log.Printf("[Freecam] Desativada")
}

// Toggle alterna entre ativa e desativada.
func (fc *FreeCamera) Toggle() {
	if fc.Active() {
		fc.Disable()
	} else {
		fc.Enable()
	}
}

// SyncPauseLock ajusta a trava quando a opção de pausar muda no meio da sessão.
func (fc *FreeCamera) SyncPauseLock() {
	if fc == nil {
		return
	}
	want := fc.Active() && fc.cfg.Freecam.PauseGame && fc.locks != nil
	switch {
	case want && fc.lock == nil:
		fc.lock = fc.locks.Acquire(pause.ModePause)
	case !want && fc.lock != nil:
		fc.lock.Release()
		fc.lock = nil
	}
}

// LookAt define a orientação; o pitch é limitado a [MinPitch, MaxPitch].
func (fc *FreeCamera) LookAt(yaw, pitch float32) {
	fc.pitch = util.Clamp(pitch, MinPitch, MaxPitch)
	fc.yaw = yaw
	fc.cam.Rotation = Orientation(fc.yaw, fc.pitch)
}

// Orientation monta a rotação sem roll para yaw/pitch em graus.
// Yaw positivo gira para a direita; pitch positivo inclina para baixo.
func Orientation(yaw, pitch float32) mgl32.Quat {
	qYaw := mgl32.QuatRotate(mgl32.DegToRad(-yaw), mgl32.Vec3{0, 1, 0})
	qPitch := mgl32.QuatRotate(mgl32.DegToRad(-pitch), mgl32.Vec3{1, 0, 0})
	return qYaw.Mul(qPitch)
}

// Angles retorna yaw e pitch atuais em graus.
func (fc *FreeCamera) Angles() (yaw, pitch float32) {
	return fc.yaw, fc.pitch
}

// Pose retorna a pose no espaço absoluto.
func (fc *FreeCamera) Pose() posedata.Pose {
	return posedata.Pose{Position: fc.cam.Position, Yaw: fc.yaw, Pitch: fc.pitch}
}

// OffsetPose retorna a pose relativa à âncora de origem.
// ok=false quando a âncora está ausente e a posição é a absoluta.
func (fc *FreeCamera) OffsetPose() (posedata.Pose, bool) {
	pos, ok := fc.converter().ToOffset(fc.cam.Position)
	return posedata.Pose{Position: pos, Yaw: fc.yaw, Pitch: fc.pitch}, ok
}

// RememberedOffset retorna a pose lembrada, se houver.
func (fc *FreeCamera) RememberedOffset() (posedata.Pose, bool) {
	if fc == nil {
		return posedata.Pose{}, false
	}
	return fc.remembered, fc.hasRemembered
}

// SetRememberedOffset substitui a pose lembrada (por exemplo, vinda do banco).
func (fc *FreeCamera) SetRememberedOffset(p posedata.Pose) {
	if fc == nil {
		return
	}
	fc.remembered = p
	fc.hasRemembered = true
}

// ForgetRemembered descarta a pose lembrada.
func (fc *FreeCamera) ForgetRemembered() {
	if fc == nil {
		return
	}
	fc.remembered = posedata.Pose{}
	fc.hasRemembered = false
}

// Update roda os controles de um frame: olhar, mover e ajuste de velocidade.
// Só age com a câmera ativa e sem interface capturando o ponteiro.
func (fc *FreeCamera) Update(dt float32, in input.Source) {
	if !fc.Active() || in == nil {
		return
	}
	if fc.gate != nil && fc.gate.InputCaptured() {
		return
	}

	fc.lookAround(in)
	fc.move(dt, in)
	fc.updateSpeed(in)
}
