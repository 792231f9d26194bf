package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatchToken(t *testing.T) {
	tests := []struct {
		pattern string
		query   string
		want    bool
	}{
		{"*", "anything", true},
		{"ROCK:*:*", "ROCK:LARGE:GRANITE", true},
		{"ROCK:LARGE:*", "ROCK:SMALL:GRANITE", false},
		{"TREE:*:OAK", "TREE:TALL:OAK", true},
		{"TREE:*:OAK", "TREE:TALL:PINE", false},
		{"ROCK:*:*", "ROCK:LARGE", false},
	}

	for _, tt := range tests {
		got := matchToken(tt.pattern, tt.query)
		if got != tt.want {
			t.Errorf("matchToken(%q, %q) = %v, want %v", tt.pattern, tt.query, got, tt.want)
		}
	}
}

func TestSpecificityScore(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"*", 0},
		{"ROCK:*:*", 1},
		{"ROCK:LARGE:*", 2},
		{"ROCK:LARGE:GRANITE", 3},
	}

	for _, tt := range tests {
		got := specificityScore(tt.pattern)
		if got != tt.want {
			t.Errorf("specificityScore(%q) = %d, want %d", tt.pattern, got, tt.want)
		}
	}
}

func TestGetPropPrefersSpecific(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if p := m.GetProp("ROCK:LARGE:GRANITE"); p == nil || p.Size[0] != 6 {
		t.Errorf("ROCK:LARGE deveria usar a entrada específica, got %+v", p)
	}
	if p := m.GetProp("ROCK:SMALL:GRANITE"); p == nil || p.Size[0] != 2 {
		t.Errorf("ROCK:SMALL deveria usar ROCK:*:*, got %+v", p)
	}
	if p := m.GetProp("UNKNOWN"); p == nil || p.Comment != "fallback" {
		t.Errorf("token desconhecido deveria cair no fallback, got %+v", p)
	}
	if len(m.Layout().Placements) == 0 {
		t.Error("layout embutido vazio")
	}
}

func TestNewManagerFromFiles(t *testing.T) {
	dir := t.TempDir()
	props := `{"props":[{"shape":"sphere","size":[3,3,3],"tokens":["BALL:*"]}]}`
	layout := `{"scene":"Test","placements":[{"token":"BALL:RED","position":[1,2,3]}]}`
	if err := os.WriteFile(filepath.Join(dir, "props.json"), []byte(props), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "layout.json"), []byte(layout), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if got := len(m.GetAllProps()); got != 1 {
		t.Errorf("props = %d, want 1", got)
	}
	if p := m.GetProp("BALL:RED"); p == nil || p.Shape != "sphere" {
		t.Errorf("GetProp(BALL:RED) = %+v", p)
	}
	if p := m.GetProp("ROCK:LARGE:GRANITE"); p != nil {
		t.Errorf("catálogo do arquivo deveria substituir o embutido, got %+v", p)
	}
	l := m.Layout()
	if l.Scene != "Test" || len(l.Placements) != 1 || l.Placements[0].Position != [3]float32{1, 2, 3} {
		t.Errorf("layout = %+v", l)
	}
}

func TestNewManagerInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "props.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewManager(dir); err == nil {
		t.Error("JSON inválido deveria falhar")
	}
}
