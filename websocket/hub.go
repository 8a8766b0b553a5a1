package websocket

import (
	"log"
	"sync"

	"github.com/fitstudio/backend/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Client is one connected coach dashboard.
type Client struct {
	CoachID uuid.UUID
	Conn    *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var CheckIns = make(chan *models.CheckIn, 64)

// RunHub pushes live check-in events to the owning coach's dashboard.
func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Dashboard connected: coach %s", client.CoachID)
			clientsMu.Lock()
			clients[client.CoachID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Dashboard disconnected: coach %s", client.CoachID)
			clientsMu.Lock()
			if conn, ok := clients[client.CoachID]; ok && conn == client.Conn {
				delete(clients, client.CoachID)
			}
			clientsMu.Unlock()
		case checkIn := <-CheckIns:
			clientsMu.RLock()
			conn, ok := clients[checkIn.CoachID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(checkIn); err != nil {
				log.Printf("Error pushing check-in to coach %s: %v", checkIn.CoachID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, checkIn.CoachID)
				clientsMu.Unlock()
			}
		}
	}
}

// Push hands a check-in to the hub without blocking the caller.
func Push(checkIn *models.CheckIn) {
	select {
	case CheckIns <- checkIn:
	default:
		log.Println("Check-in feed full, dropping event")
	}
}
