package posedata

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose é posição + orientação (graus) de uma câmera, sem roll.
type Pose struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// String retorna a representação legível da pose.
func (p Pose) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f) yaw=%.1f pitch=%.1f",
		p.Position.X(), p.Position.Y(), p.Position.Z(), p.Yaw, p.Pitch)
}
