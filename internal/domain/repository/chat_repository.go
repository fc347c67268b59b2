package repository

import (
	"context"

	"portfolio/internal/domain/entity"
)

// ServerTimestamp is a sentinel usable as an UpdateRoomFields value; the
// adapter resolves it to the datastore's own write time.
var ServerTimestamp serverTimestamp

type serverTimestamp struct{}

// ChatRepository is the persistence contract the chat core consumes: durable
// room/message documents, field-level partial updates, and watch streams
// that deliver the full current state of a result set whenever any matching
// document changes. A watch is cancelled through its context; the returned
// channel is closed when the watch ends.
type ChatRepository interface {
	CreateRoom(ctx context.Context, room *entity.ChatRoom) error
	GetRoomByID(ctx context.Context, id string) (*entity.ChatRoom, error)
	GetRoomByVisitorID(ctx context.Context, visitorID string) (*entity.ChatRoom, error)
	ListRooms(ctx context.Context) ([]*entity.ChatRoom, error)

	// UpdateRoomFields applies a partial, field-level update so concurrent
	// writers touching different fields never clobber each other. Values may
	// include the datastore's server-timestamp sentinel.
	UpdateRoomFields(ctx context.Context, roomID string, fields map[string]interface{}) error

	// CreateMessage appends a message and atomically allocates its per-room
	// sequence number. The room's denormalized preview is NOT part of this
	// write; callers update it separately.
	CreateMessage(ctx context.Context, message *entity.ChatMessage) error
	ListMessages(ctx context.Context, roomID string) ([]*entity.ChatMessage, error)

	WatchRooms(ctx context.Context) (<-chan []*entity.ChatRoom, error)
	WatchRoom(ctx context.Context, roomID string) (<-chan *entity.ChatRoom, error)
	WatchMessages(ctx context.Context, roomID string) (<-chan []*entity.ChatMessage, error)
}
