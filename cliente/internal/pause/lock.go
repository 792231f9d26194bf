// Package pause implementa o serviço de travas que pausam o jogo ou liberam o cursor.
package pause

import (
	"log"

	"github.com/google/uuid"
)

// Mode define o efeito de uma trava enquanto ela estiver aberta.
type Mode int

const (
	ModeNone   Mode = iota // só marca presença
	ModeCursor             // libera o cursor, controles de câmera ficam suspensos
	ModePause              // pausa a simulação
)

func (m Mode) String() string {
	switch m {
	case ModeCursor:
		return "cursor"
	case ModePause:
		return "pause"
	default:
		return "none"
	}
}

// Service conta as travas abertas por modo.
// Assim como o resto do núcleo, roda só na thread principal.
type Service struct {
	open map[uuid.UUID]Mode
}

// NewService cria um serviço sem travas.
func NewService() *Service {
	return &Service{open: make(map[uuid.UUID]Mode)}
}

// Handle é uma trava adquirida. Release pode ser chamado várias vezes.
type Handle struct {
	ID      uuid.UUID
	Mode    Mode
	service *Service
}

// Acquire abre uma nova trava no modo dado.
func (s *Service) Acquire(mode Mode) *Handle {
	h := &Handle{ID: uuid.New(), Mode: mode, service: s}
	s.open[h.ID] = mode
	log.Printf("[Pause] Trava %s aberta (%s)", h.ID, mode)
	return h
}

// Release fecha a trava. Chamadas repetidas não têm efeito.
func (h *Handle) Release() {
	if h == nil || h.service == nil {
		return
	}
	delete(h.service.open, h.ID)
	log.Printf("[Pause] Trava %s fechada (%s)", h.ID, h.Mode)
	h.service = nil
}

// Held informa se a trava ainda está aberta.
func (h *Handle) Held() bool {
	return h != nil && h.service != nil
}

func (s *Service) count(mode Mode) int {
	n := 0
	for _, m := range s.open {
		if m == mode {
			n++
		}
	}
	return n
}

// Count retorna quantas travas do modo estão abertas.
func (s *Service) Count(mode Mode) int {
	return s.count(mode)
}

// Paused informa se a simulação deve ficar suspensa.
func (s *Service) Paused() bool {
	return s.count(ModePause) > 0
}

// CursorFree informa se alguma interface liberou o cursor.
func (s *Service) CursorFree() bool {
	return s.count(ModeCursor) > 0
}

// InputCaptured implementa o portão de entrada da câmera livre:
// enquanto o cursor estiver livre, os controles não rodam.
func (s *Service) InputCaptured() bool {
	return s.CursorFree()
}
