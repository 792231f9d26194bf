package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// connectTelemetry tenta conectar ao servidor de telemetria em segundo plano.
func (a *App) connectTelemetry() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro em connectTelemetry: %v", r)
		}
	}()

	a.poseClient.OnStatus = func(msg string) {
		log.Printf("[Server] Status: %s", msg)
	}

	if err := a.poseClient.Connect(); err != nil {
		log.Printf("[Network] Seguindo sem telemetria: %v", err)
		return
	}
	log.Printf("[Network] Telemetria conectada, sessão %s", a.poseClient.Session())
}

// sendTelemetry publica a pose da câmera livre enquanto ela estiver ativa e
// avisa o servidor quando ela desliga.
func (a *App) sendTelemetry() {
	if a.poseClient == nil || !a.poseClient.IsConnected() {
		return
	}

	frame, ok := a.plugin.TelemetryFrame(rl.GetTime())
	if !ok {
		return
	}
	if err := a.poseClient.SendPose(frame); err != nil {
		log.Printf("[Network] Quadro de pose perdido: %v", err)
	}
}
