package pause

import "testing"

func TestAcquireRelease(t *testing.T) {
	s := NewService()
	if s.Paused() || s.CursorFree() {
		t.Fatal("serviço novo já começa travado")
	}

	p := s.Acquire(ModePause)
	c := s.Acquire(ModeCursor)
	if !s.Paused() || !s.CursorFree() || !s.InputCaptured() {
		t.Fatalf("travas abertas não refletidas: paused=%v cursor=%v", s.Paused(), s.CursorFree())
	}
	if p.ID == c.ID {
		t.Error("duas travas com o mesmo ID")
	}

	p.Release()
	if s.Paused() {
		t.Error("Paused() continua true depois de Release")
	}
	if p.Held() {
		t.Error("Held() = true depois de Release")
	}

	c.Release()
	if s.CursorFree() {
		t.Error("CursorFree() continua true depois de Release")
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	s := NewService()
	a := s.Acquire(ModePause)
	b := s.Acquire(ModePause)

	a.Release()
	a.Release()
	if got := s.Count(ModePause); got != 1 {
		t.Fatalf("Count(ModePause) = %d depois de liberar a mesma trava duas vezes, want 1", got)
	}

	b.Release()
	if s.Paused() {
		t.Error("Paused() = true com todas as travas liberadas")
	}

	var nilHandle *Handle
	nilHandle.Release()
}
