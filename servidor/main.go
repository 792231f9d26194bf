package main

import (
	"flag"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"FortressFreecam/shared/posedata"
)

func main() {
	// Garante que o working directory é o mesmo diretório do executável,
	// para que caminhos relativos (saves/, tmp/) funcionem corretamente.
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		os.Chdir(exeDir)
	}

	port := flag.String("port", "8080", "porta do servidor de telemetria")
	saveDir := flag.String("saves", "saves", "diretório do banco de sessões")
	flag.Parse()
	if p := os.Getenv("PORT"); p != "" {
		*port = p
	}

	log.SetFlags(log.Ltime | log.Lshortfile)

	// Configurar Log em Arquivo para depuração de crash
	if err := os.MkdirAll("tmp", 0755); err == nil {
		logFile, err := os.OpenFile("tmp/server.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			mw := io.MultiWriter(os.Stdout, logFile)
			log.SetOutput(mw)
		}
	}
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║   FortressFreecam TELEMETRY v0.1.0   ║")
	log.Println("╚══════════════════════════════════════╝")

	hub := newHub()

	store, err := posedata.Open(*saveDir, "sessions")
	if err != nil {
		log.Printf("Erro ao abrir SQLite, sessões não serão gravadas: %v", err)
	} else {
		defer store.Close()

		// Auto-save periódico das últimas poses
		go func() {
			for {
				func() {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("[AutoSave-Loop] Recuperado de pânico: %v", r)
						}
					}()
					if n := hub.Flush(store); n > 0 {
						log.Printf("[AutoSave] %d sessões gravadas", n)
					}
				}()
				time.Sleep(5 * time.Second)
			}
		}()
	}

	http.HandleFunc("/ws", hub.serveWs)

	// Iniciar Servidor HTTP/WebSocket com verificação de porta
	addr := "127.0.0.1:" + *port
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Printf("ERRO CRÍTICO: Não foi possível abrir a porta %s. Provavelmente há outra instância rodando.", *port)
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}

	log.Printf("Servidor de telemetria iniciado em %s", addr)
	if err := http.Serve(ln, nil); err != nil {
		log.Fatalf("Erro fatal no servidor HTTP: %v", err)
	}
}
