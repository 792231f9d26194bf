package overlay

import "time"

// Timer é uma contagem regressiva cancelável, avançada pelo loop de frames.
// Cancel é síncrono: depois dele, Tick nunca mais dispara para aquela contagem.
type Timer struct {
	Remaining time.Duration
	running   bool
}

// Start (re)inicia a contagem, descartando qualquer contagem anterior.
func (t *Timer) Start(d time.Duration) {
	t.Remaining = d
	t.running = true
}

// Cancel interrompe a contagem sem disparar.
func (t *Timer) Cancel() {
	t.Remaining = 0
	t.running = false
}

// Running informa se existe contagem em andamento.
func (t *Timer) Running() bool {
	return t.running
}

// Tick desconta dt e retorna true exatamente uma vez, no frame em que a contagem expira.
func (t *Timer) Tick(dt time.Duration) bool {
	if !t.running {
		return false
	}
	t.Remaining -= dt
	if t.Remaining > 0 {
		return false
	}
	t.Remaining = 0
	t.running = false
	return true
}
