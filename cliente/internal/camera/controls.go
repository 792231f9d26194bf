package camera

import (
	"FortressFreecam/cliente/internal/input"
	"FortressFreecam/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// lookAround aplica o deslocamento do ponteiro ao yaw/pitch.
func (fc *FreeCamera) lookAround(in input.Source) {
	dx, dy := in.LookDelta()
	s := fc.cfg.Freecam.Sensitivity

	fc.LookAt(fc.yaw+dx*s, fc.pitch-dy*s)
}

// move traduz as seis teclas de direção em deslocamento nos eixos locais.
func (fc *FreeCamera) move(dt float32, in input.Source) {
	k := fc.cfg.Keys
	var right, up, forward float32

	if in.KeyDown(input.Key(k.Forward)) {
		forward++
	}
	if in.KeyDown(input.Key(k.Backward)) {
		forward--
	}
	if in.KeyDown(input.Key(k.Left)) {
		right--
	}
	if in.KeyDown(input.Key(k.Right)) {
		right++
	}
	if in.KeyDown(input.Key(k.Up)) {
		up++
	}
	if in.KeyDown(input.Key(k.Down)) {
		up--
	}

	if right == 0 && up == 0 && forward == 0 {
		return
	}

	// Frente local é -Z
	local := mgl32.Vec3{right, up, -forward}.Normalize().Mul(fc.cfg.Freecam.MovementSpeed * dt)

	if in.KeyDown(input.Key(k.Boost)) {
		local = local.Mul(fc.cfg.Freecam.BoostMult)
	}

	fc.cam.Position = fc.cam.Position.Add(fc.cam.Rotation.Rotate(local))
}

// updateSpeed muda a velocidade de movimento com o scroll do mouse.
func (fc *FreeCamera) updateSpeed(in input.Source) {
	scroll := in.Scroll()
	if scroll == 0 {
		return
	}

	f := &fc.cfg.Freecam
	mult := f.SpeedChangeMult
	if mult < 1 {
		mult = 1
	}

	delta := mult
	if scroll < 0 {
		delta = 1 / mult
	}

	f.MovementSpeed = util.Clamp(f.MovementSpeed*delta, f.MinSpeed, f.MaxSpeed)

	if fc.notifier != nil {
		fc.notifier.Show()
	}
}
