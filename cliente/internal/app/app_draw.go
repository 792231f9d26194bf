package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	a.drawScene()
	a.panel.Draw()
	a.drawHUD()

	if a.State == StatePaused {
		a.drawPauseMenu()
	} else if a.locks.Paused() {
		a.drawPausedBanner()
	}

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D pela câmera principal do palco.
func (a *App) drawScene() {
	if a.plugin.Camera().Active() {
		// Corpo do jogador só aparece visto de fora
		a.renderer.Draw(a.stage, a.world, a.world.Body)
		return
	}
	a.renderer.Draw(a.stage, a.world)
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(340)
	height := int32(220)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	fc := a.plugin.Camera()
	mode, modeColor := "Jogador", rl.SkyBlue
	if fc.Active() {
		mode, modeColor = "Câmera livre", rl.Gold
	}
	rl.DrawText(mode, x+190, y+10, 20, modeColor)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	rl.DrawText("POSIÇÃO", x+10, y+45, 12, rl.Gray)
	if main := a.stage.Main(); main != nil {
		p := main.Position
		rl.DrawText(fmt.Sprintf("Absoluta: (%.1f, %.1f, %.1f)", p.X(), p.Y(), p.Z()), x+10, y+60, 14, rl.White)
	}
	if pose, ok := fc.OffsetPose(); fc.Active() && ok {
		p := pose.Position
		rl.DrawText(fmt.Sprintf("Relativa: (%.1f, %.1f, %.1f)", p.X(), p.Y(), p.Z()), x+10, y+78, 14, rl.LightGray)
		rl.DrawText(fmt.Sprintf("Yaw %.1f  Pitch %.1f", pose.Yaw, pose.Pitch), x+10, y+96, 14, rl.LightGray)
	}
	rl.DrawText(fmt.Sprintf("Recentralizações: %d", a.world.Shifts), x+10, y+114, 14, rl.LightGray)

	rl.DrawLine(x+10, y+135, x+width-10, y+135, rl.NewColor(100, 100, 100, 100))

	syncStatus := "Offline"
	if a.poseClient != nil && a.poseClient.IsConnected() {
		syncStatus = "Conectado"
	}
	rl.DrawText(fmt.Sprintf("Velocidade: %.1f | Telemetria: %s", a.Config.Freecam.MovementSpeed, syncStatus), x+10, y+145, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Props: %d desenhados, %d além do far clip", a.renderer.Drawn, a.renderer.Culled), x+10, y+163, 14, rl.LightGray)

	rl.DrawText(fmt.Sprintf("%s: Câmera livre | Scroll: Velocidade | F3: HUD", a.Config.Keys.Toggle), x+10, y+190, 14, rl.SkyBlue)
}

// drawPausedBanner avisa que a simulação está congelada pela câmera livre.
func (a *App) drawPausedBanner() {
	text := "PAUSADO"
	w := rl.MeasureText(text, 20)
	rl.DrawText(text, (int32(rl.GetScreenWidth())-w)/2, 20, 20, rl.NewColor(255, 255, 255, 160))
}

// drawPauseMenu desenha o menu de escape centralizado.
func (a *App) drawPauseMenu() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	panelWidth := int32(400)
	panelHeight := int32(160)
	px := (screenWidth - panelWidth) / 2
	py := (screenHeight - panelHeight) / 2

	rl.DrawRectangle(px, py, panelWidth, panelHeight, rl.NewColor(20, 20, 30, 240))
	rl.DrawRectangleLines(px, py, panelWidth, panelHeight, rl.Gold)

	title := "MENU"
	tw := rl.MeasureText(title, 30)
	rl.DrawText(title, px+(panelWidth-tw)/2, py+25, 30, rl.Gold)

	hint := "ESC para voltar"
	hw := rl.MeasureText(hint, 18)
	rl.DrawText(hint, px+(panelWidth-hw)/2, py+90, 18, rl.LightGray)
}
