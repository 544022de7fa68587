package ws

// Hub bertanggung jawab untuk:
// menyimpan koneksi client admin, menerima event dari service,
// dan melakukan broadcast event ke seluruh client yang terhubung.

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Event adalah amplop pesan yang dikirim ke client.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Client mewakili koneksi WebSocket
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{ID: uuid.NewString(), Conn: conn, Send: make(chan []byte, 256)}
}

// Hub mengelola semua koneksi client
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run memproses register, unregister, dan broadcast sampai ctx dibatalkan.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for client := range h.Clients {
				delete(h.Clients, client)
				close(client.Send)
			}
			return
		case client := <-h.Register:
			h.Clients[client] = true
			log.Printf("ws: client %s registered", client.ID)
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Printf("ws: client %s unregistered", client.ID)
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					// client lambat, putuskan
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}

func (h *Hub) register(c *Client) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unregister(c *Client) {
	select {
	case h.Unregister <- c:
	case <-h.done:
	}
}

// Publish mengirim event ke semua client tanpa memblokir pemanggil.
// Event dibuang bila antrian broadcast penuh.
func (h *Hub) Publish(eventType string, data interface{}) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		log.Printf("ws: failed to encode %s event: %v", eventType, err)
		return
	}
	select {
	case h.Broadcast <- payload:
	default:
		log.Printf("ws: broadcast queue full, dropping %s event", eventType)
	}
}
