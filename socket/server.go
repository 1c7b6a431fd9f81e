package socket

import (
	"log"

	"wishlink_server/models"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes and returns a new Socket.IO server. Each signed
// in session subscribes with its user id and joins a room of the same name;
// activity snapshots are broadcast to that room. Leaving is implicit on
// disconnect.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "subscribe", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("Invalid userId in subscribe request")
			return
		}
		log.Printf("Session %s subscribed to activity for user %s\n", c.ID(), userID)
		c.Join(userID)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return server
}

// ActivityBroadcaster pushes activity feed snapshots to subscribed sessions.
// Implements services.ActivityNotifier.
type ActivityBroadcaster struct {
	Server *socketio.Server
}

// NotifyActivity broadcasts the full feed snapshot to the target user's room.
// Consumers replace their local feed wholesale.
func (b *ActivityBroadcaster) NotifyActivity(userID string, snapshot []models.Activity) {
	b.Server.BroadcastToRoom("/", userID, "activity", snapshot)
}
