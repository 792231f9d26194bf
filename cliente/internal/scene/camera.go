// Package scene descreve os objetos de cena que a câmera livre enxerga:
// câmeras, o palco que decide qual delas é a principal e as referências
// entregues pelo host a cada carregamento de cena.
package scene

import "github.com/go-gl/mathgl/mgl32"

// MainTag marca câmeras candidatas a câmera principal.
const MainTag = "MainCamera"

// RenderPath é o caminho de renderização usado pela câmera.
type RenderPath int

const (
	RenderPathForward RenderPath = iota
	RenderPathDeferred
	RenderPathVertexLit
)

// Antialiasing é o modo de anti-serrilhado do pós-processamento.
type Antialiasing int

const (
	AntialiasingNone Antialiasing = iota
	AntialiasingFXAA
	AntialiasingSMAA
	AntialiasingTAA
)

// LayerMask seleciona camadas (volumes de pós-processamento, culling).
type LayerMask uint32

// PostProcessSettings são os ajustes copiáveis entre câmeras.
type PostProcessSettings struct {
	ActiveEffects []string // referências aos assets de efeito
	Resources     string
	OldResources  string
	Antialiasing  Antialiasing
	VolumeLayer   LayerMask
}

// PostProcessLayer é o pós-processamento anexado a uma câmera.
type PostProcessLayer struct {
	Enabled  bool
	Settings PostProcessSettings
}

// Camera é uma câmera da cena.
type Camera struct {
	Name    string
	Tag     string
	Enabled bool

	Position mgl32.Vec3
	Rotation mgl32.Quat

	FieldOfView  float32
	FarClipPlane float32
	RenderPath   RenderPath

	// nil quando a câmera não tem pós-processamento
	PostProcess *PostProcessLayer
}

// NewCamera cria uma câmera desativada, marcada como candidata a principal.
func NewCamera(name string) *Camera {
	return &Camera{
		Name:         name,
		Tag:          MainTag,
		Rotation:     mgl32.QuatIdent(),
		FieldOfView:  60,
		FarClipPlane: 1000,
	}
}

// Forward retorna a direção para onde a câmera olha (-Z local).
func (c *Camera) Forward() mgl32.Vec3 {
	return c.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// CopyVisuals copia o caminho de renderização e o pós-processamento de src
// para dst. O estado Enabled do pós-processamento de dst é preservado.
// Retorna false quando src não tem pós-processamento; nesse caso só o
// caminho de renderização é copiado.
func CopyVisuals(dst, src *Camera) bool {
	if dst == nil || src == nil {
		return false
	}

	dst.RenderPath = src.RenderPath

	if src.PostProcess == nil {
		return false
	}
	if dst.PostProcess == nil {
		dst.PostProcess = &PostProcessLayer{}
	}

	s := src.PostProcess.Settings
	s.ActiveEffects = append([]string(nil), s.ActiveEffects...)
	dst.PostProcess.Settings = s
	return true
}
