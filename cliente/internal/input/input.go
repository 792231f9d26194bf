// Package input define a visão de entrada que a câmera livre consome.
// O host amostra o dispositivo real uma vez por frame e entrega um Snapshot.
package input

// Key é o nome de uma tecla como aparece na configuração ("W", "F9", "LeftShift").
type Key string

// Source é a entrada de um frame.
type Source interface {
	KeyDown(k Key) bool
	KeyPressed(k Key) bool
	// LookDelta retorna o deslocamento do ponteiro em unidades de eixo.
	// dy positivo significa ponteiro para cima.
	LookDelta() (dx, dy float32)
	Scroll() float32
}

// Snapshot é uma Source imutável montada pelo host a cada frame.
type Snapshot struct {
	Down    map[Key]bool
	Pressed map[Key]bool
	DX, DY  float32
	Wheel   float32
}

// KeyDown implementa Source.
func (s *Snapshot) KeyDown(k Key) bool { return s != nil && s.Down[k] }

// KeyPressed implementa Source.
func (s *Snapshot) KeyPressed(k Key) bool { return s != nil && s.Pressed[k] }

// LookDelta implementa Source.
func (s *Snapshot) LookDelta() (float32, float32) {
	if s == nil {
		return 0, 0
	}
	return s.DX, s.DY
}

// Scroll implementa Source.
func (s *Snapshot) Scroll() float32 {
	if s == nil {
		return 0
	}
	return s.Wheel
}

// Hold monta um Snapshot com as teclas dadas seguradas.
func Hold(keys ...Key) *Snapshot {
	s := &Snapshot{Down: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		s.Down[k] = true
	}
	return s
}
