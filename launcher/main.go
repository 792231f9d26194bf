package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gorilla/websocket"
)

func exeName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

// waitServer tenta o handshake websocket até o servidor responder.
func waitServer(url string, timeout time.Duration) error {
	dialer := websocket.Dialer{HandshakeTimeout: time.Second}
	deadline := time.Now().Add(timeout)

	var err error
	for time.Now().Before(deadline) {
		var conn *websocket.Conn
		conn, _, err = dialer.Dial(url, nil)
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(250 * time.Millisecond)
	}
	return err
}

func main() {
	port := flag.String("port", "8080", "porta do servidor de telemetria")
	flag.Parse()

	fmt.Println("╔══════════════════════════════════════╗")
	fmt.Println("║      FortressFreecam Launcher        ║")
	fmt.Println("╚══════════════════════════════════════╝")

	url := fmt.Sprintf("ws://127.0.0.1:%s/ws", *port)

	// 1. Iniciar o servidor de telemetria
	fmt.Println("[1/2] Iniciando servidor de telemetria...")
	serverPath, err := filepath.Abs(filepath.Join("servidor", exeName("server")))
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do servidor: %v", err)
	}
	serverCmd := exec.Command(serverPath, "-port", *port)
	serverCmd.Dir = "servidor"
	serverCmd.Stdout = os.Stdout
	serverCmd.Stderr = os.Stderr
	if err := serverCmd.Start(); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}

	// 2. Aguardar o servidor aceitar conexões
	fmt.Println("Aguardando o servidor aceitar conexões...")
	if err := waitServer(url, 10*time.Second); err != nil {
		fmt.Printf("AVISO: servidor não respondeu (%v). O cliente segue sem telemetria.\n", err)
	}

	// 3. Iniciar o cliente apontando para o servidor
	fmt.Println("[2/2] Abrindo cliente...")
	clientPath, err := filepath.Abs(filepath.Join("cliente", exeName("client")))
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do cliente: %v", err)
	}

	clientCmd := exec.Command(clientPath, "-server", url)
	clientCmd.Dir = "cliente" // diretório de trabalho para assets e config.yaml

	if err := clientCmd.Run(); err != nil {
		fmt.Printf("ERRO: cliente terminou com falha em %s: %v\n", clientPath, err)
	}

	// Cliente fechou: derruba o servidor junto
	if serverCmd.Process != nil {
		serverCmd.Process.Kill()
	}
	fmt.Println("\nFortressFreecam encerrado.")
}
