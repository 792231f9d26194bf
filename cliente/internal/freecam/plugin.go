// Package freecam liga a câmera livre ao host: cria a instância única quando a
// UI fica pronta, recebe os eventos de cena, repassa mudanças de configuração
// e roda os controles uma vez por frame.
package freecam

import (
	"log"
	"time"

	"FortressFreecam/cliente/internal/camera"
	"FortressFreecam/cliente/internal/input"
	"FortressFreecam/cliente/internal/overlay"
	"FortressFreecam/cliente/internal/pause"
	"FortressFreecam/cliente/internal/scene"
	"FortressFreecam/shared/config"
	"FortressFreecam/shared/posedata"
	"FortressFreecam/shared/proto/fvnet"
)

// Intervalo mínimo entre quadros de telemetria, em segundos
const TelemetryInterval = 0.1

// PoseStore persiste a pose lembrada por cena, sempre relativa à origem.
type PoseStore interface {
	SavePose(scene string, p posedata.Pose) error
	LoadPose(scene string) (posedata.Pose, bool, error)
}

// Plugin é o contexto que possui a câmera livre e o overlay de velocidade.
type Plugin struct {
	cfg   *config.Config
	stage *scene.Stage
	locks *pause.Service
	store PoseStore
	refs  scene.Cache

	// movement_speed como veio do arquivo na última carga; o valor em cfg
	// muda com o scroll
	fileSpeed float32

	lastTelemetry float64
	sentActive    bool

	overlay *overlay.Speed
	camera  *camera.FreeCamera
}

// New cria o plugin. A câmera só existe depois de OnUIReady.
// store pode ser nil; nesse caso a pose lembrada vive só na memória.
func New(cfg *config.Config, stage *scene.Stage, locks *pause.Service, store PoseStore) *Plugin {
	return &Plugin{
		cfg:   cfg,
		stage: stage,
		locks: locks,
		store: store,

		fileSpeed: cfg.Freecam.MovementSpeed,
	}
}

// OnUIReady cria o overlay e a câmera livre. Só a primeira chamada tem efeito.
func (p *Plugin) OnUIReady(panel overlay.Panel) {
	if p.camera != nil {
		log.Printf("[Freecam] UI pronta de novo, câmera já existe")
		return
	}

	p.overlay = overlay.NewSpeed(panel, p.cfg)
	deps := camera.Deps{
		Stage:   p.stage,
		Refs:    &p.refs,
		Overlay: p.overlay,
	}
	// Interfaces nil sem serviço de pausa, nunca um *pause.Service nil
	if p.locks != nil {
		deps.Locks = p.locks
		deps.Gate = p.locks
	} else {
		log.Printf("[Freecam] Sem serviço de pausa, pause_game fica sem efeito")
	}
	p.camera = camera.New(p.cfg, deps)

	log.Printf("[Freecam] Câmera livre criada (atalho: %s)", p.cfg.Keys.Toggle)
}

// Camera retorna a câmera livre, ou nil antes de OnUIReady.
func (p *Plugin) Camera() *camera.FreeCamera {
	return p.camera
}

// Overlay retorna o overlay de velocidade, ou nil antes de OnUIReady.
func (p *Plugin) Overlay() *overlay.Speed {
	return p.overlay
}

// Refs retorna as referências da cena atual.
func (p *Plugin) Refs() scene.Refs {
	return p.refs.Refs
}

// OnSceneReady recebe as referências da cena recém carregada e recupera a
// pose lembrada dela, se houver banco.
func (p *Plugin) OnSceneReady(r scene.Refs) {
	p.refs.Set(r)

	if r.Origin == nil {
		log.Printf("[Freecam] Cena %q sem âncora de origem, conversões ficam degradadas", r.Scene)
	}

	if p.store == nil || p.camera == nil || r.Scene == "" {
		return
	}

	pose, ok, err := p.store.LoadPose(r.Scene)
	if err != nil {
		log.Printf("[Persistence] Erro ao carregar pose de %q: %v", r.Scene, err)
		return
	}
	if ok {
		p.camera.SetRememberedOffset(pose)
		log.Printf("[Persistence] Pose lembrada de %q: %v", r.Scene, pose)
	}
}

// OnSceneTeardown desativa a câmera livre, salva a pose e esquece a cena.
func (p *Plugin) OnSceneTeardown() {
	if p.camera != nil {
		p.camera.Disable()
		p.savePose()
		p.camera.ForgetRemembered()
	}
	p.refs.Clear()
}

func (p *Plugin) savePose() error {
	if p.store == nil || p.camera == nil || p.refs.Scene == "" {
		return nil
	}
	pose, ok := p.camera.RememberedOffset()
	if !ok {
		return nil
	}
	if err := p.store.SavePose(p.refs.Scene, pose); err != nil {
		log.Printf("[Persistence] Erro ao salvar pose de %q: %v", p.refs.Scene, err)
		return err
	}
	return nil
}

// Tick roda um frame: atalho de alternância, controles e contagem do overlay.
func (p *Plugin) Tick(dt float32, in input.Source) {
	if p.camera == nil {
		return
	}

	if in != nil && in.KeyPressed(input.Key(p.cfg.Keys.Toggle)) {
		p.camera.Toggle()
	}

	p.camera.Update(dt, in)
	p.overlay.Tick(time.Duration(float64(dt) * float64(time.Second)))
}

// ApplyConfig copia a nova configuração para a instância compartilhada e
// propaga fov, far clip e pós-processamento imediatamente, ativa ou não.
// A velocidade ajustada pelo scroll só é trocada quando movement_speed muda
// no arquivo.
func (p *Plugin) ApplyConfig(next *config.Config) {
	prev := *p.cfg
	*p.cfg = *next

	if next.Freecam.MovementSpeed == p.fileSpeed {
		p.cfg.Freecam.MovementSpeed = prev.Freecam.MovementSpeed
		p.cfg.Normalize()
	} else {
		p.fileSpeed = next.Freecam.MovementSpeed
		log.Printf("[Config] Velocidade: %v", p.cfg.Freecam.MovementSpeed)
	}

	f := p.cfg.Freecam
	if f.FOV != prev.Freecam.FOV {
		p.camera.UpdateFieldOfView(f.FOV)
		log.Printf("[Config] FOV: %v", f.FOV)
	}
	if f.FarClipPlane != prev.Freecam.FarClipPlane {
		p.camera.UpdateFarClipPlane(f.FarClipPlane)
		log.Printf("[Config] Far clip: %v", f.FarClipPlane)
	}
	if f.PostProcess != prev.Freecam.PostProcess {
		p.camera.UpdatePostProcessEnabled(f.PostProcess)
		log.Printf("[Config] Pós-processamento: %v", f.PostProcess)
	}
	if f.PauseGame != prev.Freecam.PauseGame {
		p.camera.SyncPauseLock()
	}
}

// TelemetryFrame monta o próximo quadro de pose para o servidor. Enquanto a
// câmera está ativa sai um quadro a cada TelemetryInterval; ao desativar sai
// um único quadro com Active=false.
func (p *Plugin) TelemetryFrame(now float64) (fvnet.PoseFrame, bool) {
	if p.camera == nil {
		return fvnet.PoseFrame{}, false
	}

	active := p.camera.Active()
	if !active && !p.sentActive {
		return fvnet.PoseFrame{}, false
	}
	if active && p.sentActive && now-p.lastTelemetry < TelemetryInterval {
		return fvnet.PoseFrame{}, false
	}
	p.lastTelemetry = now
	p.sentActive = active

	pose, ok := p.camera.OffsetPose()
	return fvnet.PoseFrame{
		Scene:       p.refs.Scene,
		X:           pose.Position.X(),
		Y:           pose.Position.Y(),
		Z:           pose.Position.Z(),
		Yaw:         pose.Yaw,
		Pitch:       pose.Pitch,
		Speed:       p.cfg.Freecam.MovementSpeed,
		Active:      active,
		OriginKnown: ok,
	}, true
}

// Close desativa a câmera e salva a pose da cena atual.
func (p *Plugin) Close() error {
	if p.camera == nil {
		return nil
	}
	p.camera.Disable()
	return p.savePose()
}
