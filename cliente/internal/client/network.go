package client

import (
	"errors"
	"log"
	"sync"
	"time"

	"FortressFreecam/shared/proto/fvnet"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrNotConnected é retornado ao enviar sem conexão aberta.
var ErrNotConnected = errors.New("telemetria desconectada")

// PoseClient envia a pose da câmera livre para o servidor de telemetria.
type PoseClient struct {
	conn      *websocket.Conn
	url       string
	session   string
	connected bool
	mu        sync.RWMutex
	writeMu   sync.Mutex

	// Tentativas de conexão e espera entre elas
	MaxRetries int
	RetryDelay time.Duration

	// Chamado quando o servidor responde com uma mensagem de texto
	OnStatus func(msg string)
}

func NewPoseClient(url string) *PoseClient {
	return &PoseClient{
		url:        url,
		session:    uuid.NewString(),
		MaxRetries: 10,
		RetryDelay: 2 * time.Second,
	}
}

// Session identifica este processo nos quadros enviados.
func (c *PoseClient) Session() string {
	return c.session
}

func (c *PoseClient) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var conn *websocket.Conn
	var err error
	for i := 0; i < c.MaxRetries; i++ {
		log.Printf("[Network] Tentativa de conexão %d/%d em %s...", i+1, c.MaxRetries, c.url)
		conn, _, err = dialer.Dial(c.url, nil)
		if err == nil {
			break
		}
		log.Printf("[Network] Servidor ainda não está pronto: %v. Aguardando...", err)
		time.Sleep(c.RetryDelay)
	}

	if err != nil {
		log.Printf("[Network] Telemetria indisponível após %d tentativas: %v", c.MaxRetries, err)
		return err
	}
	if conn == nil {
		return ErrNotConnected
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	go c.readLoop(conn)
	return nil
}

func (c *PoseClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// SendPose carimba a sessão no quadro e envia como mensagem binária.
func (c *PoseClient) SendPose(f fvnet.PoseFrame) error {
	c.mu.RLock()
	conn, ok := c.conn, c.connected
	c.mu.RUnlock()
	if !ok {
		return ErrNotConnected
	}

	f.Session = c.session

	c.writeMu.Lock()
	err := conn.WriteMessage(websocket.BinaryMessage, f.Marshal())
	c.writeMu.Unlock()

	if err != nil {
		log.Printf("[Network] Erro ao enviar pose: %v", err)
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
	}
	return err
}

func (c *PoseClient) readLoop(conn *websocket.Conn) {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		conn.Close()
	}()

	for {
		kind, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("[Network] Conexão perdida: %v", err)
			return
		}
		if kind == websocket.TextMessage && c.OnStatus != nil {
			c.OnStatus(string(message))
		}
	}
}

// Close encerra a conexão educadamente. Pode ser chamado sem conexão.
func (c *PoseClient) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.connected = false
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	c.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	c.writeMu.Unlock()
	return conn.Close()
}
