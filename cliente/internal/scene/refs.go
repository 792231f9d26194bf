package scene

import "github.com/go-gl/mathgl/mgl32"

// LookAxis é um dos dois controladores de olhar do jogador.
// O horizontal informa o yaw atual, o vertical o pitch desejado (graus).
type LookAxis interface {
	Angle() float32
}

// Body é o corpo físico do jogador.
type Body struct {
	Name     string
	Position mgl32.Vec3
}

// Anchor é o objeto que marca a origem flutuante do mundo.
type Anchor struct {
	Name     string
	Position mgl32.Vec3
}

// Refs são as referências encontradas num carregamento de cena.
// Qualquer campo pode ser nil.
type Refs struct {
	Scene        string
	PlayerBody   *Body
	LookX        LookAxis
	LookY        LookAxis
	PlayerCamera *Camera
	Origin       *Anchor
}

// Cache guarda as referências da cena atual.
type Cache struct {
	Refs
}

// Set substitui as referências pelas da cena recém carregada.
func (c *Cache) Set(r Refs) {
	c.Refs = r
}

// Clear esquece as referências da cena descarregada.
func (c *Cache) Clear() {
	c.Refs = Refs{}
}

// OriginPosition implementa util.OriginRef.
func (c *Cache) OriginPosition() (mgl32.Vec3, bool) {
	if c == nil || c.Origin == nil {
		return mgl32.Vec3{}, false
	}
	return c.Origin.Position, true
}
