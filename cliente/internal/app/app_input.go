package app

import (
	"log"

	"FortressFreecam/cliente/internal/input"
	"FortressFreecam/cliente/internal/pause"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Escala do movimento do mouse para unidades de eixo de olhar
const mouseScale = 0.1

// keyCodes traduz os nomes usados no config.yaml para as teclas do raylib.
var keyCodes = map[input.Key]int32{
	"A": rl.KeyA, "B": rl.KeyB, "C": rl.KeyC, "D": rl.KeyD, "E": rl.KeyE,
	"F": rl.KeyF, "G": rl.KeyG, "H": rl.KeyH, "I": rl.KeyI, "J": rl.KeyJ,
	"K": rl.KeyK, "L": rl.KeyL, "M": rl.KeyM, "N": rl.KeyN, "O": rl.KeyO,
	"P": rl.KeyP, "Q": rl.KeyQ, "R": rl.KeyR, "S": rl.KeyS, "T": rl.KeyT,
	"U": rl.KeyU, "V": rl.KeyV, "W": rl.KeyW, "X": rl.KeyX, "Y": rl.KeyY,
	"Z": rl.KeyZ,

	"F1": rl.KeyF1, "F2": rl.KeyF2, "F3": rl.KeyF3, "F4": rl.KeyF4,
	"F5": rl.KeyF5, "F6": rl.KeyF6, "F7": rl.KeyF7, "F8": rl.KeyF8,
	"F9": rl.KeyF9, "F10": rl.KeyF10, "F11": rl.KeyF11, "F12": rl.KeyF12,

	"Escape":       rl.KeyEscape,
	"Space":        rl.KeySpace,
	"Tab":          rl.KeyTab,
	"LeftShift":    rl.KeyLeftShift,
	"RightShift":   rl.KeyRightShift,
	"LeftControl":  rl.KeyLeftControl,
	"RightControl": rl.KeyRightControl,
	"LeftAlt":      rl.KeyLeftAlt,
	"RightAlt":     rl.KeyRightAlt,
	"Up":           rl.KeyUp,
	"Down":         rl.KeyDown,
	"Left":         rl.KeyLeft,
	"Right":        rl.KeyRight,
}

// sample lê o teclado e o mouse uma vez por frame.
// Só as teclas conhecidas em keyCodes são amostradas.
func (a *App) sample() *input.Snapshot {
	s := &input.Snapshot{
		Down:    make(map[input.Key]bool),
		Pressed: make(map[input.Key]bool),
	}

	for name, code := range keyCodes {
		if rl.IsKeyDown(code) {
			s.Down[name] = true
		}
		if rl.IsKeyPressed(code) {
			s.Pressed[name] = true
		}
	}

	// Tela cresce para baixo; no eixo de olhar, positivo é para cima
	delta := rl.GetMouseDelta()
	s.DX = delta.X * mouseScale
	s.DY = -delta.Y * mouseScale
	s.Wheel = rl.GetMouseWheelMove()
	return s
}

// updateInput processa as teclas gerais do visualizador.
func (a *App) updateInput(in *input.Snapshot) {
	// Toggle debug info
	if in.KeyPressed("F3") {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Fullscreen toggle
	if in.KeyPressed("F11") {
		rl.ToggleFullscreen()
	}

	// ESC: menu com cursor livre e simulação pausada
	if in.KeyPressed("Escape") {
		a.toggleMenu()
	}
}

func (a *App) toggleMenu() {
	if a.State == StateViewing {
		a.State = StatePaused
		a.menuLock = a.locks.Acquire(pause.ModeCursor)
		rl.EnableCursor()
		log.Println("[App] Menu aberto")
		return
	}

	a.State = StateViewing
	a.menuLock.Release()
	a.menuLock = nil
	rl.DisableCursor()
	log.Println("[App] Retomando")
}
