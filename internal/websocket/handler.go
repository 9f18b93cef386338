package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SessionChecker reports whether a capture socket may attach to the
// session. The session manager implements it.
type SessionChecker interface {
	Touch(sessionID string) bool
}

func ServeWs(hub *Hub, checker SessionChecker) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		sessionID := c.Params("sessionId")
		if sessionID == "" || !checker.Touch(sessionID) {
			c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "unknown session"))
			c.Close()
			return
		}

		client := &Client{
			Hub:       hub,
			Conn:      c,
			SessionID: sessionID,
			Send:      make(chan []byte, 64),
		}
		client.Hub.register <- client

		go client.WritePump()
		client.ReadPump()
	})
}

// UpgradeMiddleware rejects plain HTTP requests on the ws route.
func UpgradeMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}
