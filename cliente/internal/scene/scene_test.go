package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStageMain(t *testing.T) {
	player := NewCamera("Player")
	distance := NewCamera("DistanceRenderCam")
	distance.Tag = ""
	free := NewCamera("Freecam")

	s := NewStage()
	s.Add(distance)
	s.Add(player)
	s.Add(free)
	s.Add(player)

	if got := len(s.Cameras()); got != 3 {
		t.Fatalf("len(Cameras) = %d, want 3", got)
	}

	tests := []struct {
		name                   string
		player, distance, free bool
		want                   *Camera
	}{
		{"nenhuma ativa", false, false, false, nil},
		{"sem tag não conta", false, true, false, nil},
		{"jogador", true, true, false, player},
		{"câmera livre", false, true, true, free},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player.Enabled, distance.Enabled, free.Enabled = tt.player, tt.distance, tt.free
			if got := s.Main(); got != tt.want {
				t.Errorf("Main() = %v, want %v", got, tt.want)
			}
		})
	}

	player.Enabled, distance.Enabled, free.Enabled = true, false, false
	s.Remove(player)
	if s.Contains(player) || s.Main() != nil {
		t.Errorf("câmera removida continua no palco")
	}

	free.Enabled = true
	if got := s.Main(); got != free {
		t.Errorf("Main() depois da remoção = %v, want %v", got, free)
	}
}

func TestCopyVisuals(t *testing.T) {
	src := NewCamera("Player")
	src.RenderPath = RenderPathDeferred
	src.PostProcess = &PostProcessLayer{
		Enabled: true,
		Settings: PostProcessSettings{
			ActiveEffects: []string{"Bloom", "Vignette"},
			Resources:     "PostProcessResources",
			Antialiasing:  AntialiasingTAA,
			VolumeLayer:   1 << 8,
		},
	}
	dst := NewCamera("Freecam")
	dst.PostProcess = &PostProcessLayer{Enabled: false}

	if !CopyVisuals(dst, src) {
		t.Fatal("CopyVisuals = false com pós-processamento na origem")
	}
	if dst.RenderPath != RenderPathDeferred {
		t.Errorf("RenderPath = %v, want deferred", dst.RenderPath)
	}
	if dst.PostProcess.Enabled {
		t.Errorf("CopyVisuals alterou Enabled do destino")
	}
	got := dst.PostProcess.Settings
	if got.Antialiasing != AntialiasingTAA || got.VolumeLayer != 1<<8 || got.Resources != "PostProcessResources" {
		t.Errorf("Settings = %+v", got)
	}

	src.PostProcess.Settings.ActiveEffects[0] = "Grain"
	if got.ActiveEffects[0] != "Bloom" {
		t.Errorf("lista de efeitos compartilhada entre câmeras")
	}
}

func TestCopyVisualsWithoutPostProcess(t *testing.T) {
	src := NewCamera("Player")
	src.RenderPath = RenderPathVertexLit
	dst := NewCamera("Freecam")
	dst.PostProcess = &PostProcessLayer{Settings: PostProcessSettings{Resources: "antigo"}}

	if CopyVisuals(dst, src) {
		t.Fatal("CopyVisuals = true sem pós-processamento na origem")
	}
	if dst.RenderPath != RenderPathVertexLit {
		t.Errorf("RenderPath não copiado")
	}
	if dst.PostProcess.Settings.Resources != "antigo" {
		t.Errorf("pós-processamento do destino foi alterado")
	}
}

func TestCacheOrigin(t *testing.T) {
	var c Cache
	if _, ok := c.OriginPosition(); ok {
		t.Error("cache vazio informou origem")
	}
	c.Set(Refs{Scene: "Peak", Origin: &Anchor{Position: mgl32.Vec3{1, 2, 3}}})
	if p, ok := c.OriginPosition(); !ok || p != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("OriginPosition = %v, %v", p, ok)
	}
	c.Clear()
	if c.Scene != "" || c.Origin != nil {
		t.Errorf("Clear não limpou: %+v", c.Refs)
	}
}
