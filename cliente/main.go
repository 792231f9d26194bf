package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"FortressFreecam/cliente/internal/app"
	"FortressFreecam/cliente/internal/camera"
	"FortressFreecam/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configPath := flag.String("config", config.Path(), "Arquivo de configuração YAML")
	serverURL := flag.String("server", "", "URL do servidor de telemetria (ex: ws://localhost:8080/ws)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_freecam.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(f)
		log.Println("--- INICIANDO FORTRESS FREECAM ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║       FortressFreecam v0.1.0         ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Config] Usando padrões: %v", err)
		}
		cfg = config.DefaultConfig()
		// Cria o arquivo para que o watcher tenha o que observar
		if err := cfg.SaveTo(*configPath); err != nil {
			log.Printf("[Config] Não foi possível criar %s: %v", *configPath, err)
		}
	}

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
		camera.Debug = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	application := app.New(cfg, *configPath)
	application.Run()
}
