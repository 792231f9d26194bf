package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"FortressFreecam/shared/proto/fvnet"

	"github.com/gorilla/websocket"
)

// echoServer decodifica cada quadro recebido e devolve no canal.
func echoServer(t *testing.T, frames chan<- fvnet.PoseFrame) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var f fvnet.PoseFrame
			if err := f.Unmarshal(data); err != nil {
				t.Errorf("quadro inválido: %v", err)
				return
			}
			frames <- f
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestSendPose(t *testing.T) {
	frames := make(chan fvnet.PoseFrame, 1)
	srv := echoServer(t, frames)

	c := NewPoseClient(wsURL(srv))
	if err := c.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer c.Close()

	if !c.IsConnected() {
		t.Fatal("IsConnected() = false depois de conectar")
	}

	sent := fvnet.PoseFrame{Scene: "Peak", X: 1, Y: 2, Z: 3, Yaw: 90, Speed: 20, Active: true, OriginKnown: true}
	if err := c.SendPose(sent); err != nil {
		t.Fatalf("SendPose: %v", err)
	}

	select {
	case got := <-frames:
		sent.Session = c.Session()
		if got != sent {
			t.Errorf("recebido %+v, want %+v", got, sent)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("servidor não recebeu o quadro")
	}
}

func TestSendPoseDisconnected(t *testing.T) {
	c := NewPoseClient("ws://127.0.0.1:1")
	if err := c.SendPose(fvnet.PoseFrame{}); err != ErrNotConnected {
		t.Errorf("SendPose sem conexão = %v, want ErrNotConnected", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close sem conexão: %v", err)
	}
}

func TestConnectGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := wsURL(srv)
	srv.Close()

	c := NewPoseClient(url)
	c.MaxRetries = 2
	c.RetryDelay = 10 * time.Millisecond
	if err := c.Connect(); err == nil {
		t.Fatal("Connect deveria falhar sem servidor")
	}
	if c.IsConnected() {
		t.Error("IsConnected() = true sem servidor")
	}
}

func TestSessionsAreUnique(t *testing.T) {
	a, b := NewPoseClient("ws://x"), NewPoseClient("ws://x")
	if a.Session() == "" || a.Session() == b.Session() {
		t.Errorf("sessões %q e %q", a.Session(), b.Session())
	}
}
