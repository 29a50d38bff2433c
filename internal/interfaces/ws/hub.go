// Package ws difunde eventos del tablero (notificaciones, altas) a los
// clientes websocket conectados.
package ws

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/tu-usuario/rocketry-hub/pkg/logger"
)

// Hub registro de conexiones websocket con difusión a todas.
type Hub struct {
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	clients    map[*websocket.Conn]bool
	mu         sync.Mutex
	log        *logger.Logger
}

// NewHub crea el hub. Llamar Run en una goroutine antes de registrar clientes.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[*websocket.Conn]bool),
		log:        log,
	}
}

// Register incorpora una conexión al hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister retira y cierra una conexión.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// Broadcast encola un mensaje para todos los clientes conectados. Si el buffer
// está lleno el mensaje se descarta: los eventos son avisos, no estado.
func (h *Hub) Broadcast(payload []byte) {
	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn().Msg("buffer de broadcast lleno, evento descartado")
	}
}

// Run atiende registros, bajas y difusión. Bloquea; correr en goroutine.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			h.log.Debug().Msg("cliente websocket conectado")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}
