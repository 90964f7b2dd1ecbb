package model

import "encoding/json"

// Sender values on client-supplied transcript turns.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatTurn is one element of the client's transcript. The client sends the
// full transcript on every request; nothing is kept server-side.
type ChatTurn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// ChatRequest is the POST /api/chat body. Message may be omitted, in which
// case the last history element carries the in-flight message.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

// PlanTask is a single checkable item inside a plan day.
type PlanTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// PlanDay groups the tasks for one day of the plan.
type PlanDay struct {
	Day   int        `json:"day"`
	Tasks []PlanTask `json:"tasks"`
}

// Plan is the structured self-help schedule the model may emit instead of a
// chat reply. StartDate is always stamped server-side; the model's value is
// never trusted.
type Plan struct {
	PlanName  string    `json:"planName"`
	StartDate string    `json:"startDate"`
	Days      []PlanDay `json:"days"`
}

// ChatReply is the response shape when the model output is ordinary prose.
type ChatReply struct {
	ChatMessage string `json:"chatMessage"`
}

// ErrorReply is the body of 4xx/5xx responses.
type ErrorReply struct {
	Error string `json:"error"`
}

// Websocket event names.
const (
	EventJoinRoom    = "join_room"
	EventSendMessage = "send_message"
	EventNewMessage  = "new_message"
)

// Envelope frames every websocket message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// JoinRoomPayload is the data of a join_room event.
type JoinRoomPayload struct {
	RoomName string `json:"roomName"`
	Alias    string `json:"alias"`
}

// SendMessagePayload is the part of a send_message payload the relay reads.
// The full payload is forwarded verbatim under new_message.
type SendMessagePayload struct {
	Room string `json:"room"`
}
