// Package overlay implementa o painel temporário que mostra a velocidade da câmera livre.
package overlay

import (
	"fmt"
	"strconv"
	"time"

	"FortressFreecam/shared/config"
)

// Panel é o painel fornecido pela camada de UI do host.
type Panel interface {
	Show()
	Hide()
	SetText(speed, boost string)
}

// Speed mostra a velocidade e o multiplicador de turbo atuais e se esconde
// sozinho depois do atraso configurado. Show pode ser chamado em sequência:
// a contagem anterior é cancelada e recomeça.
type Speed struct {
	panel   Panel
	cfg     *config.Config
	timer   Timer
	visible bool
}

// NewSpeed cria o overlay sobre o painel do host.
func NewSpeed(panel Panel, cfg *config.Config) *Speed {
	return &Speed{panel: panel, cfg: cfg}
}

// Show atualiza os textos, mostra o painel e reinicia a contagem para esconder.
func (s *Speed) Show() {
	if s == nil || s.panel == nil {
		return
	}

	if s.timer.Running() {
		s.timer.Cancel()
	}

	s.panel.SetText(SpeedText(s.cfg.Freecam.MovementSpeed), BoostText(s.cfg.Freecam.BoostMult))
	s.panel.Show()
	s.visible = true

	s.timer.Start(seconds(s.cfg.Overlay.HideDelay))
}

// Tick avança a contagem; deve ser chamado uma vez por frame.
func (s *Speed) Tick(dt time.Duration) {
	if s == nil {
		return
	}
	if s.timer.Tick(dt) {
		s.panel.Hide()
		s.visible = false
	}
}

// Visible informa se o painel está sendo mostrado.
func (s *Speed) Visible() bool {
	return s != nil && s.visible
}

// Pending informa se há uma contagem para esconder em andamento.
func (s *Speed) Pending() bool {
	return s != nil && s.timer.Running()
}

// SpeedText formata a linha de velocidade.
func SpeedText(v float32) string {
	return fmt.Sprintf("Velocidade: %s", formatFloat(v))
}

// BoostText formata a linha do turbo.
func BoostText(v float32) string {
	return fmt.Sprintf("Turbo: x%s", formatFloat(v))
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func seconds(s float32) time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}
