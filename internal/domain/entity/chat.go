package entity

import "time"

// ParticipantRole identifies which side of a conversation a presence or
// typing signal belongs to.
type ParticipantRole string

const (
	RoleVisitor ParticipantRole = "visitor"
	RoleAdmin   ParticipantRole = "admin"
)

// ChatRoom is one conversation between a site visitor and the admin.
// There is at most one room per visitor id. Presence flags and the typing
// slot are last-writer-wins; no history is kept for either.
type ChatRoom struct {
	ID            string    `json:"id" firestore:"id"`
	VisitorID     string    `json:"visitor_id" firestore:"visitorId"`
	VisitorName   string    `json:"visitor_name" firestore:"visitorName"`
	VisitorEmail  string    `json:"visitor_email" firestore:"visitorEmail"`
	LastMessage   string    `json:"last_message" firestore:"lastMessage"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageTime,serverTimestamp"`
	UnreadCount   int       `json:"unread_count" firestore:"unreadCount"`
	IsActive      bool      `json:"is_active" firestore:"isActive"`
	VisitorOnline bool      `json:"visitor_online" firestore:"visitorOnline"`
	AdminOnline   bool      `json:"admin_online" firestore:"adminOnline"`
	// Typing holds the display name of whoever is currently composing a
	// message, or "" when nobody is. Single slot: a second typer overwrites
	// the first.
	Typing     string    `json:"typing,omitempty" firestore:"typing"`
	MessageSeq int64     `json:"-" firestore:"messageSeq"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

// ChatMessage is immutable once created; there are no edit or delete
// operations. CreatedAt is assigned by the datastore at write time, Seq is a
// strictly increasing per-room counter used to break same-millisecond ties.
type ChatMessage struct {
	ID          string    `json:"id" firestore:"id"`
	RoomID      string    `json:"room_id" firestore:"roomId"`
	Text        string    `json:"text" firestore:"text"`
	SenderID    string    `json:"sender_id" firestore:"senderId"`
	SenderName  string    `json:"sender_name" firestore:"senderName"`
	SenderEmail string    `json:"sender_email" firestore:"senderEmail"`
	IsAdmin     bool      `json:"is_admin" firestore:"isAdmin"`
	Read        bool      `json:"read" firestore:"read"`
	Seq         int64     `json:"seq" firestore:"seq"`
	CreatedAt   time.Time `json:"created_at" firestore:"timestamp,serverTimestamp"`
}
