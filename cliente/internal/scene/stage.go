package scene

// Stage guarda as câmeras vivas e responde qual é a principal.
type Stage struct {
	cameras []*Camera
}

// NewStage cria um palco vazio.
func NewStage() *Stage {
	return &Stage{}
}

// Add registra uma câmera. Registrar duas vezes não tem efeito.
func (s *Stage) Add(c *Camera) {
	if c == nil {
		return
	}
	for _, existing := range s.cameras {
		if existing == c {
			return
		}
	}
	s.cameras = append(s.cameras, c)
}

// Remove tira uma câmera do palco (por exemplo, quando a cena é descarregada).
func (s *Stage) Remove(c *Camera) {
	for i, existing := range s.cameras {
		if existing == c {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Contains informa se a câmera ainda existe no palco.
func (s *Stage) Contains(c *Camera) bool {
	if c == nil {
		return false
	}
	for _, existing := range s.cameras {
		if existing == c {
			return true
		}
	}
	return false
}

// Main retorna a primeira câmera ativa marcada com MainTag, ou nil.
func (s *Stage) Main() *Camera {
	if s == nil {
		return nil
	}
	for _, c := range s.cameras {
		if c.Enabled && c.Tag == MainTag {
			return c
		}
	}
	return nil
}

// Cameras retorna uma cópia da lista de câmeras registradas.
func (s *Stage) Cameras() []*Camera {
	return append([]*Camera(nil), s.cameras...)
}
