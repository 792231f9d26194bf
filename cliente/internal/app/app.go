package app

import (
	"log"

	"FortressFreecam/cliente/internal/assets"
	"FortressFreecam/cliente/internal/client"
	"FortressFreecam/cliente/internal/freecam"
	"FortressFreecam/cliente/internal/pause"
	"FortressFreecam/cliente/internal/render"
	"FortressFreecam/cliente/internal/scene"
	"FortressFreecam/cliente/internal/world"
	"FortressFreecam/shared/config"
	"FortressFreecam/shared/posedata"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateViewing AppState = iota // Cena rodando
	StatePaused                  // Menu aberto, cursor livre
)

// App é o visualizador que hospeda a câmera livre.
type App struct {
	Config     *config.Config
	ConfigPath string
	State      AppState

	// Núcleo da câmera livre
	stage  *scene.Stage
	locks  *pause.Service
	plugin *freecam.Plugin
	store  *posedata.Store

	// Cena de demonstração
	world    *world.World
	renderer *render.Renderer
	panel    *render.Panel

	// Telemetria e recarga de configuração
	poseClient *client.PoseClient
	watcher    *config.Watcher

	// Trava de cursor enquanto o menu está aberto
	menuLock *pause.Handle

	frameCount int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config, cfgPath string) *App {
	return &App{
		Config:     cfg,
		ConfigPath: cfgPath,
		State:      StateViewing,
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC abre o menu em vez de fechar
	rl.DisableCursor()

	log.Printf("[FortressFreecam] Janela inicializada: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.init()

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// init monta o palco, a cena, o plugin e os serviços de fundo.
func (a *App) init() {
	a.stage = scene.NewStage()
	a.locks = pause.NewService()

	mgr, err := assets.NewManager("assets/config")
	if err != nil {
		log.Printf("[App] AVISO: catálogo de props inválido, usando o embutido: %v", err)
		mgr, _ = assets.NewManager("")
	}
	a.renderer = render.NewRenderer(mgr)
	a.world = world.New(mgr.Layout().Scene, a.stage)

	store, err := posedata.Open(a.Config.SaveDir, "freecam")
	if err != nil {
		log.Printf("[App] Poses não serão persistidas: %v", err)
	} else {
		a.store = store
	}

	// Interface nil quando não há banco, nunca um *Store nil
	var poses freecam.PoseStore
	if a.store != nil {
		poses = a.store
	}
	a.plugin = freecam.New(a.Config, a.stage, a.locks, poses)

	a.panel = render.NewPanel(a.Config)
	a.plugin.OnUIReady(a.panel)
	a.plugin.OnSceneReady(a.world.Refs())

	a.startWatcher()
	if a.Config.ServerURL != "" {
		a.poseClient = client.NewPoseClient(a.Config.ServerURL)
		go a.connectTelemetry()
	}
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++
	dt := rl.GetFrameTime()
	in := a.sample()

	a.pollConfig()
	a.updateInput(in)

	// A câmera livre roda mesmo com a simulação pausada
	a.plugin.Tick(dt, in)
	a.panel.Update(dt)

	if a.playerCanMove() {
		a.world.Update(dt, in, a.Config.Keys, a.Config.Freecam.Sensitivity)
	}

	a.sendTelemetry()
}

// playerCanMove informa se o jogador recebe a entrada deste frame.
func (a *App) playerCanMove() bool {
	if a.locks.Paused() || a.locks.CursorFree() {
		return false
	}
	return !a.plugin.Camera().Active()
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.watcher != nil {
		a.watcher.Close()
	}

	if err := a.plugin.Close(); err != nil {
		log.Printf("[App] Erro ao salvar pose: %v", err)
	}

	if a.poseClient != nil {
		a.poseClient.Close()
	}
	if a.store != nil {
		a.store.Close()
	}

	if err := a.Config.SaveTo(a.ConfigPath); err != nil {
		log.Printf("[FortressFreecam] Erro ao salvar configurações: %v", err)
	}
}
