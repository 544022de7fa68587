package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/c14220110/healthcheck-backend/internal/common/response"
	"github.com/c14220110/healthcheck-backend/pkg/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Sesuaikan policy CORS jika diperlukan
		return true
	},
}

// ServeWS meng-upgrade koneksi admin. Browser tidak bisa mengirim header
// Authorization saat handshake, jadi token dibaca dari query "token".
func ServeWS(hub *Hub, secret string) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam("token")
		if token == "" {
			return response.JSON(c, http.StatusUnauthorized, "Token query parameter missing", nil)
		}
		claims, err := utils.ValidateJWTToken(secret, token)
		if err != nil {
			return response.JSON(c, http.StatusUnauthorized, "Invalid token: "+err.Error(), nil)
		}
		if !claims.IsAdmin {
			return response.JSON(c, http.StatusForbidden, "Anda tidak memiliki hak akses", nil)
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}
		client := NewClient(conn)
		if !hub.register(client) {
			conn.Close()
			return nil
		}

		// Jalankan goroutine untuk membaca dan menulis pesan
		go client.writePump()
		go client.readPump(hub)
		return nil
	}
}

// readPump hanya mendeteksi koneksi tertutup; pesan dari client diabaikan.
func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.unregister(c)
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
