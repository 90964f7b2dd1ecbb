package handler

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"mindsoul/server/model"
	"mindsoul/server/room"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleSocket upgrades the connection and runs its event loop: join_room
// adds the member to a room, send_message relays the payload verbatim to the
// room under new_message, and a read error is the implicit disconnect.
func HandleSocket(registry *room.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn("websocket upgrade failed", "error", err)
			return
		}

		// gorilla permits one concurrent writer per conn; relays from other
		// members' goroutines serialize here.
		var writeMu sync.Mutex
		member := room.NewMember(func(v any) error {
			writeMu.Lock()
			defer writeMu.Unlock()
			return conn.WriteJSON(v)
		})

		defer func() {
			registry.Disconnect(member)
			conn.Close()
		}()

		for {
			_, p, err := conn.ReadMessage()
			if err != nil {
				log.Debug("socket closed", "member", member.ID, "error", err)
				return
			}

			var env model.Envelope
			if err := json.Unmarshal(p, &env); err != nil {
				log.Debug("ignoring malformed frame", "member", member.ID, "error", err)
				continue
			}

			switch env.Event {
			case model.EventJoinRoom:
				var join model.JoinRoomPayload
				if err := json.Unmarshal(env.Data, &join); err != nil {
					log.Debug("ignoring malformed join_room", "member", member.ID, "error", err)
					continue
				}
				registry.Join(member, join.RoomName, join.Alias)
			case model.EventSendMessage:
				var send model.SendMessagePayload
				if err := json.Unmarshal(env.Data, &send); err != nil {
					log.Debug("ignoring malformed send_message", "member", member.ID, "error", err)
					continue
				}
				registry.Relay(send.Room, member, model.Envelope{
					Event: model.EventNewMessage,
					Data:  env.Data,
				})
			default:
				// Unknown events are ignored.
			}
		}
	}
}
