// Command client is a terminal room client: it joins a room on the relay,
// forwards stdin lines as send_message events, and prints incoming
// new_message events from other members.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"mindsoul/server/model"
)

type roomMessage struct {
	Room  string `json:"room"`
	Alias string `json:"alias"`
	Text  string `json:"text"`
}

const writeWait = 5 * time.Second

func main() {
	host := flag.String("host", "localhost:8080", "Relay host:port")
	roomName := flag.String("room", "lobby", "Room to join")
	alias := flag.String("alias", "anonymous", "Alias to join with")
	flag.Parse()

	u := url.URL{Scheme: "ws", Host: *host, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("failed to connect", "url", u.String(), "error", err)
	}
	defer conn.Close()

	join, _ := json.Marshal(model.JoinRoomPayload{RoomName: *roomName, Alias: *alias})
	if err := writeEnvelope(conn, model.EventJoinRoom, join); err != nil {
		log.Error("failed to join room", "room", *roomName, "error", err)
		return
	}
	fmt.Printf("joined %q as %q\n", *roomName, *alias)

	// The reader returns on connection loss; main then falls through to the
	// deferred close rather than exiting mid-flight.
	done := make(chan struct{})
	go func() {
		defer close(done)
		printMessages(conn, os.Stdout)
	}()

	sendLines(conn, os.Stdin, *roomName, *alias, done)
}

// printMessages prints incoming new_message events to w until the
// connection fails.
func printMessages(conn *websocket.Conn, w io.Writer) {
	for {
		var env model.Envelope
		if err := conn.ReadJSON(&env); err != nil {
			log.Error("connection closed", "error", err)
			return
		}
		if env.Event != model.EventNewMessage {
			continue
		}
		var msg roomMessage
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			continue
		}
		fmt.Fprintf(w, "[%s] %s: %s\n", msg.Room, msg.Alias, msg.Text)
	}
}

// sendLines forwards each line of r as a send_message event, stopping on
// write failure or when done closes.
func sendLines(conn *websocket.Conn, r io.Reader, roomName, alias string, done <-chan struct{}) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-done:
			return
		default:
		}
		payload, _ := json.Marshal(roomMessage{Room: roomName, Alias: alias, Text: scanner.Text()})
		if err := writeEnvelope(conn, model.EventSendMessage, payload); err != nil {
			log.Error("failed to send", "error", err)
			return
		}
	}
}

func writeEnvelope(conn *websocket.Conn, event string, data json.RawMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(model.Envelope{Event: event, Data: data})
}
