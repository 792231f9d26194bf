package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// target é um binário do projeto.
type target struct {
	name    string
	dir     string
	output  string
	useCgo  bool
	ldflags string
}

func targets() []target {
	exe := ""
	gui := ""
	if runtime.GOOS == "windows" {
		exe = ".exe"
		gui = " -H=windowsgui"
	}
	return []target{
		// SQLite (mattn/go-sqlite3) exige CGO também no servidor
		{"servidor", "servidor", "servidor/server" + exe, true, "-s -w"},
		{"cliente", "cliente", "cliente/client" + exe, true, "-s -w" + gui},
		{"launcher", "launcher", "FortressFreecam" + exe, false, "-s -w"},
	}
}

func main() {
	only := flag.String("only", "", "compilar só este alvo (servidor, cliente ou launcher)")
	noPause := flag.Bool("no-pause", false, "não esperar Enter no final")
	flag.Parse()

	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║    FortressFreecam Native Builder    ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	setupEnvironment()

	built := 0
	for _, t := range targets() {
		if *only != "" && *only != t.name {
			continue
		}
		if err := buildComponent(t); err != nil {
			fatal(err, *noPause)
		}
		built++
	}
	if built == 0 {
		fatal(fmt.Errorf("alvo desconhecido: %q", *only), *noPause)
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Println(ColorYellow + "Dica: Execute o launcher para abrir servidor e cliente." + ColorReset)

	if !*noPause {
		fmt.Println("\nPressione Enter para sair...")
		fmt.Scanln()
	}
}

func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0] Configurando ambiente de compilação..." + ColorReset)

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	}
}

func buildComponent(t target) error {
	fmt.Printf(ColorYellow+"\n[+] Compilando %s..."+ColorReset+"\n", t.name)

	cgoValue := "0"
	if t.useCgo {
		cgoValue = "1"
	}

	cmd := exec.Command("go", "build", "-ldflags", t.ldflags, "-o", t.output, "./"+t.dir)
	cmd.Env = append(os.Environ(), "CGO_ENABLED="+cgoValue)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %w", t.name, err)
	}

	fmt.Printf(ColorGreen+"  - %s compilado com sucesso -> %s"+ColorReset+"\n", t.name, t.output)
	return nil
}

func fatal(err error, noPause bool) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	if !noPause {
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
	}
	os.Exit(1)
}
