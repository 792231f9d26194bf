package render

import (
	"log"

	"FortressFreecam/cliente/internal/assets"
	"FortressFreecam/cliente/internal/scene"
	"FortressFreecam/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Prop é um objeto estático da cena, guardado relativo à âncora de origem.
type Prop struct {
	Token  string
	Offset mgl32.Vec3
	Entry  *assets.PropEntry
}

// Renderer desenha a cena a partir da câmera principal do palco.
type Renderer struct {
	Props []Prop

	// Estatísticas do último frame
	Drawn  int
	Culled int
}

// NewRenderer monta os props do layout usando o catálogo.
func NewRenderer(mgr *assets.Manager) *Renderer {
	r := &Renderer{}
	if mgr == nil {
		return r
	}

	layout := mgr.Layout()
	for _, p := range layout.Placements {
		entry := mgr.GetProp(p.Token)
		if entry == nil {
			log.Printf("[Renderer] Token sem prop no catálogo: %s", p.Token)
			continue
		}
		r.Props = append(r.Props, Prop{
			Token:  p.Token,
			Offset: mgl32.Vec3{p.Position[0], p.Position[1], p.Position[2]},
			Entry:  entry,
		})
	}

	log.Printf("[Renderer] %d props carregados para a cena %q", len(r.Props), layout.Scene)
	return r
}

func toRL(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Camera3D converte a câmera de cena para a câmera do raylib.
func Camera3D(c *scene.Camera) rl.Camera3D {
	up := c.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
	fovy := util.Clamp(c.FieldOfView, 1, 179)
	return rl.Camera3D{
		Position:   toRL(c.Position),
		Target:     toRL(c.Position.Add(c.Forward())),
		Up:         toRL(up),
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}

// Draw desenha o chão, os props e os corpos extras vistos pela câmera principal.
// Props além do far clip da câmera não são desenhados.
func (r *Renderer) Draw(stage *scene.Stage, origin util.OriginRef, bodies ...*scene.Body) {
	cam := stage.Main()
	if cam == nil {
		return
	}

	conv := util.NewConverter(origin)
	farSq := cam.FarClipPlane * cam.FarClipPlane
	r.Drawn, r.Culled = 0, 0

	rl.BeginMode3D(Camera3D(cam))

	rl.DrawGrid(80, 10)
	if anchor, ok := conv.ToAbsolute(mgl32.Vec3{}); ok {
		rl.DrawCubeWires(toRL(anchor), 1, 1, 1, rl.Yellow)
	}

	for _, p := range r.Props {
		pos, _ := conv.ToAbsolute(p.Offset)
		if util.DistSq(pos, cam.Position) > farSq {
			r.Culled++
			continue
		}
		drawProp(pos, p.Entry)
		r.Drawn++
	}

	for _, b := range bodies {
		if b == nil {
			continue
		}
		rl.DrawCube(toRL(b.Position.Add(mgl32.Vec3{0, 1, 0})), 0.8, 2, 0.8, rl.SkyBlue)
	}

	rl.EndMode3D()

	drawPostProcess(cam)
}

func drawProp(pos mgl32.Vec3, e *assets.PropEntry) {
	col := rl.NewColor(e.Color.R, e.Color.G, e.Color.B, e.Color.A)
	center := pos.Add(mgl32.Vec3{0, e.Size[1] / 2, 0})

	switch e.Shape {
	case "sphere":
		rl.DrawSphere(toRL(center), e.Size[0], col)
	case "cylinder":
		rl.DrawCylinder(toRL(pos), e.Size[0], e.Size[0], e.Size[1], 8, col)
	default:
		rl.DrawCube(toRL(center), e.Size[0], e.Size[1], e.Size[2], col)
		rl.DrawCubeWires(toRL(center), e.Size[0], e.Size[1], e.Size[2], rl.NewColor(0, 0, 0, 80))
	}
}
