package main

import (
	"log"
	"net/http"
	"sort"
	"sync"

	"FortressFreecam/shared/posedata"
	"FortressFreecam/shared/proto/fvnet"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// session é o último estado conhecido de um cliente.
type session struct {
	last   fvnet.PoseFrame
	frames int
	dirty  bool
}

// Hub recebe quadros de pose e guarda o último de cada sessão.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*session
	conns    map[*websocket.Conn]struct{}
}

func newHub() *Hub {
	return &Hub{
		sessions: make(map[string]*session),
		conns:    make(map[*websocket.Conn]struct{}),
	}
}

// Handle aplica um quadro recebido.
func (h *Hub) Handle(f fvnet.PoseFrame) {
	if f.Session == "" {
		log.Printf("[Hub] Quadro sem sessão descartado")
		return
	}

	h.mu.Lock()
	s, ok := h.sessions[f.Session]
	if !ok {
		s = &session{}
		h.sessions[f.Session] = s
	}
	wasActive := s.last.Active
	s.last = f
	s.frames++
	s.dirty = true
	h.mu.Unlock()

	if !ok {
		log.Printf("[Hub] Nova sessão %s na cena %q", f.Session, f.Scene)
	}
	if f.Active != wasActive {
		log.Printf("[Hub] Sessão %s: câmera livre ativa=%v em (%.1f, %.1f, %.1f)", f.Session, f.Active, f.X, f.Y, f.Z)
	}
	if !f.OriginKnown {
		log.Printf("[Hub] Sessão %s enviou posição sem âncora de origem", f.Session)
	}
}

// Last retorna o último quadro de uma sessão.
func (h *Hub) Last(id string) (fvnet.PoseFrame, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return fvnet.PoseFrame{}, false
	}
	return s.last, true
}

// Sessions lista as sessões conhecidas em ordem.
func (h *Hub) Sessions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Flush grava no banco as poses que mudaram desde a última chamada.
// A chave é "sessão/cena" para não misturar cenas da mesma sessão.
func (h *Hub) Flush(store *posedata.Store) int {
	h.mu.Lock()
	var pending []fvnet.PoseFrame
	for _, s := range h.sessions {
		if s.dirty && s.last.OriginKnown {
			pending = append(pending, s.last)
			s.dirty = false
		}
	}
	h.mu.Unlock()

	saved := 0
	for _, f := range pending {
		pose := posedata.Pose{Position: mgl32.Vec3{f.X, f.Y, f.Z}, Yaw: f.Yaw, Pitch: f.Pitch}
		if err := store.SavePose(f.Session+"/"+f.Scene, pose); err != nil {
			log.Printf("[Hub] Erro ao salvar sessão %s: %v", f.Session, err)
			continue
		}
		saved++
	}
	return saved
}

// serveWs lê quadros de um cliente até a conexão cair.
func (h *Hub) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Hub] Erro no upgrade do WebSocket: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	log.Printf("[Hub] Cliente registrado: %s", conn.RemoteAddr())

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
		log.Printf("[Hub] Cliente desregistrado: %s", conn.RemoteAddr())
	}()

	if err := conn.WriteMessage(websocket.TextMessage, []byte("Conectado ao servidor de telemetria")); err != nil {
		return
	}

	for {
		kind, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[Hub] Erro ao ler mensagem: %v", err)
			}
			return
		}
		if kind != websocket.BinaryMessage {
			continue
		}

		var f fvnet.PoseFrame
		if err := f.Unmarshal(message); err != nil {
			log.Printf("[Hub] Erro ao desempacotar quadro: %v", err)
			continue
		}
		h.Handle(f)
	}
}
