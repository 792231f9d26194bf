package util

import "github.com/go-gl/mathgl/mgl32"

// OriginRef fornece a posição atual da âncora de origem flutuante.
// O segundo retorno é false quando a âncora não existe na cena atual.
type OriginRef interface {
	OriginPosition() (mgl32.Vec3, bool)
}

// Converter traduz posições entre o espaço absoluto (o que a engine enxerga
// agora) e o espaço relativo à âncora de origem, que sobrevive aos
// re-ancoramentos do mundo.
//
// Sem âncora a conversão vira identidade e o retorno ok=false sinaliza que
// o resultado está degradado.
type Converter struct {
	Origin OriginRef
}

// NewConverter cria um conversor sobre a referência de origem dada.
func NewConverter(origin OriginRef) Converter {
	return Converter{Origin: origin}
}

func (c Converter) origin() (mgl32.Vec3, bool) {
	if c.Origin == nil {
		return mgl32.Vec3{}, false
	}
	return c.Origin.OriginPosition()
}

// ToOffset converte uma posição absoluta em offset relativo à origem.
func (c Converter) ToOffset(absolute mgl32.Vec3) (mgl32.Vec3, bool) {
	o, ok := c.origin()
	if !ok {
		return absolute, false
	}
	return absolute.Sub(o), true
}

// ToAbsolute converte um offset relativo à origem em posição absoluta.
func (c Converter) ToAbsolute(offset mgl32.Vec3) (mgl32.Vec3, bool) {
	o, ok := c.origin()
	if !ok {
		return offset, false
	}
	return offset.Add(o), true
}

// FixedOrigin é uma OriginRef estática, útil para testes e ferramentas.
type FixedOrigin struct {
	Position mgl32.Vec3
	Missing  bool
}

// OriginPosition implementa OriginRef.
func (f FixedOrigin) OriginPosition() (mgl32.Vec3, bool) {
	if f.Missing {
		return mgl32.Vec3{}, false
	}
	return f.Position, true
}
