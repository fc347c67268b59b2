package websocket

import (
	"encoding/json"
	"time"
)

// Frame is the wire envelope for both directions. RoomID is only meaningful
// on admin frames; a visitor connection is bound to its own room.
type Frame struct {
	Type      string          `json:"type"`
	RoomID    string          `json:"room_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// Inbound frame types.
const (
	TypePing        = "ping"
	TypeSendMessage = "send_message"
	TypeTyping      = "typing"
	TypeSetOnline   = "set_online"
	TypeMarkRead    = "mark_read"
	TypeJoinRoom    = "join_room"
	TypeLeaveRoom   = "leave_room"
)

// Outbound frame types.
const (
	TypePong        = "pong"
	TypeRoomReady   = "room_ready"
	TypeMessages    = "messages"
	TypeRooms       = "rooms"
	TypePresence    = "presence"
	TypeVisitorName = "visitor_name"
	TypeError       = "error"
)

type SendMessagePayload struct {
	Text string `json:"text"`
}

type SetOnlinePayload struct {
	Online bool `json:"online"`
}

type TypingPayload struct {
	Typing string `json:"typing"`
}

type PresencePayload struct {
	Role   string `json:"role"`
	Online bool   `json:"online"`
}

type VisitorNamePayload struct {
	Name string `json:"name"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Encode marshals an outbound frame, stamping the send time.
func Encode(frameType, roomID string, data interface{}) ([]byte, error) {
	frame := Frame{
		Type:      frameType,
		RoomID:    roomID,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		frame.Data = raw
	}

	return json.Marshal(frame)
}
