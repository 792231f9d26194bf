package fvnet

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// PoseFrame é o retrato da câmera livre enviado para o servidor de telemetria.
// A posição vai relativa à âncora de origem; OriginKnown=false indica que a
// âncora estava ausente e a posição é a absoluta.
type PoseFrame struct {
	Session     string
	Scene       string
	X, Y, Z     float32
	Yaw         float32
	Pitch       float32
	Speed       float32
	Active      bool
	OriginKnown bool
}

// Números dos campos no formato protobuf
const (
	fieldSession     protowire.Number = 1
	fieldScene       protowire.Number = 2
	fieldX           protowire.Number = 3
	fieldY           protowire.Number = 4
	fieldZ           protowire.Number = 5
	fieldYaw         protowire.Number = 6
	fieldPitch       protowire.Number = 7
	fieldSpeed       protowire.Number = 8
	fieldActive      protowire.Number = 9
	fieldOriginKnown protowire.Number = 10
)

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 {
		return b // proto3: zero é valor default, não serializa
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// Marshal serializa o frame no formato de fio protobuf.
func (m *PoseFrame) Marshal() []byte {
	b := make([]byte, 0, 64)
	b = appendString(b, fieldSession, m.Session)
	b = appendString(b, fieldScene, m.Scene)
	b = appendFloat(b, fieldX, m.X)
	b = appendFloat(b, fieldY, m.Y)
	b = appendFloat(b, fieldZ, m.Z)
	b = appendFloat(b, fieldYaw, m.Yaw)
	b = appendFloat(b, fieldPitch, m.Pitch)
	b = appendFloat(b, fieldSpeed, m.Speed)
	b = appendBool(b, fieldActive, m.Active)
	b = appendBool(b, fieldOriginKnown, m.OriginKnown)
	return b
}

// Unmarshal lê um frame. Campos desconhecidos são ignorados.
func (m *PoseFrame) Unmarshal(data []byte) error {
	*m = PoseFrame{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case typ == protowire.BytesType && (num == fieldSession || num == fieldScene):
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
			if num == fieldSession {
				m.Session = v
			} else {
				m.Scene = v
			}
		case typ == protowire.Fixed32Type && num >= fieldX && num <= fieldSpeed:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
			f := math.Float32frombits(v)
			switch num {
			case fieldX:
				m.X = f
			case fieldY:
				m.Y = f
			case fieldZ:
				m.Z = f
			case fieldYaw:
				m.Yaw = f
			case fieldPitch:
				m.Pitch = f
			case fieldSpeed:
				m.Speed = f
			}
		case typ == protowire.VarintType && (num == fieldActive || num == fieldOriginKnown):
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
			if num == fieldActive {
				m.Active = protowire.DecodeBool(v)
			} else {
				m.OriginKnown = protowire.DecodeBool(v)
			}
		case num <= fieldOriginKnown:
			return fmt.Errorf("fvnet: campo %d com wire type %d inesperado", num, typ)
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}
