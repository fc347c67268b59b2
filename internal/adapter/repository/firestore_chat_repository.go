package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/pkg/errors"
	"portfolio/pkg/logger"
)

const (
	chatRoomsCollection = "chatRooms"
	messagesCollection  = "messages"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) CreateRoom(ctx context.Context, room *entity.ChatRoom) error {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}

	_, err := r.client.Collection(chatRoomsCollection).Doc(room.ID).Set(ctx, room)
	if err != nil {
		return errors.Internal("Failed to create chat room", err)
	}

	return nil
}

func (r *firestoreChatRepository) GetRoomByID(ctx context.Context, id string) (*entity.ChatRoom, error) {
	doc, err := r.client.Collection(chatRoomsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat room", err)
		}
		return nil, errors.Internal("Failed to get chat room", err)
	}

	var room entity.ChatRoom
	if err := doc.DataTo(&room); err != nil {
		return nil, errors.Internal("Failed to parse chat room data", err)
	}
	room.ID = doc.Ref.ID

	return &room, nil
}

func (r *firestoreChatRepository) GetRoomByVisitorID(ctx context.Context, visitorID string) (*entity.ChatRoom, error) {
	query := r.client.Collection(chatRoomsCollection).Where("visitorId", "==", visitorID).Limit(1)
	doc, err := query.Documents(ctx).Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Chat room", nil)
		}
		return nil, errors.Internal("Failed to query chat room by visitor", err)
	}

	var room entity.ChatRoom
	if err := doc.DataTo(&room); err != nil {
		return nil, errors.Internal("Failed to parse chat room data", err)
	}
	room.ID = doc.Ref.ID

	return &room, nil
}

func (r *firestoreChatRepository) ListRooms(ctx context.Context) ([]*entity.ChatRoom, error) {
	query := r.client.Collection(chatRoomsCollection).OrderBy("lastMessageTime", firestore.Desc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list chat rooms", err)
	}

	return parseRoomDocs(docs), nil
}

func (r *firestoreChatRepository) UpdateRoomFields(ctx context.Context, roomID string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		if value == repository.ServerTimestamp {
			value = firestore.ServerTimestamp
		}
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := r.client.Collection(chatRoomsCollection).Doc(roomID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Chat room", err)
		}
		return errors.Internal("Failed to update chat room", err)
	}

	return nil
}

// CreateMessage allocates the room's next sequence number and writes the
// message in one transaction. The room's lastMessage preview is deliberately
// not updated here; that second write belongs to the caller and may lag.
func (r *firestoreChatRepository) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	roomRef := r.client.Collection(chatRoomsCollection).Doc(message.RoomID)
	msgRef := roomRef.Collection(messagesCollection).Doc(message.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		roomDoc, err := tx.Get(roomRef)
		if err != nil {
			return err
		}

		var seq int64
		if v, err := roomDoc.DataAt("messageSeq"); err == nil {
			if n, ok := v.(int64); ok {
				seq = n
			}
		}
		message.Seq = seq + 1

		if err := tx.Update(roomRef, []firestore.Update{{Path: "messageSeq", Value: message.Seq}}); err != nil {
			return err
		}
		return tx.Set(msgRef, message)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Chat room", err)
		}
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, roomID string) ([]*entity.ChatMessage, error) {
	query := r.client.Collection(chatRoomsCollection).Doc(roomID).
		Collection(messagesCollection).OrderBy("timestamp", firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list messages", err)
	}

	return parseMessageDocs(docs), nil
}

func (r *firestoreChatRepository) WatchRooms(ctx context.Context) (<-chan []*entity.ChatRoom, error) {
	query := r.client.Collection(chatRoomsCollection).OrderBy("lastMessageTime", firestore.Desc)

	out := make(chan []*entity.ChatRoom, 1)
	snapshots := query.Snapshots(ctx)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Room watch terminated: %v", err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("Failed to read room snapshot: %v", err)
				continue
			}

			select {
			case out <- parseRoomDocs(docs):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *firestoreChatRepository) WatchRoom(ctx context.Context, roomID string) (<-chan *entity.ChatRoom, error) {
	ref := r.client.Collection(chatRoomsCollection).Doc(roomID)

	out := make(chan *entity.ChatRoom, 1)
	snapshots := ref.Snapshots(ctx)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Room %s watch terminated: %v", roomID, err)
				}
				return
			}
			if !snap.Exists() {
				continue
			}

			var room entity.ChatRoom
			if err := snap.DataTo(&room); err != nil {
				logger.Error("Failed to parse room %s snapshot: %v", roomID, err)
				continue
			}
			room.ID = snap.Ref.ID

			select {
			case out <- &room:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *firestoreChatRepository) WatchMessages(ctx context.Context, roomID string) (<-chan []*entity.ChatMessage, error) {
	query := r.client.Collection(chatRoomsCollection).Doc(roomID).
		Collection(messagesCollection).OrderBy("timestamp", firestore.Asc)

	out := make(chan []*entity.ChatMessage, 1)
	snapshots := query.Snapshots(ctx)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Message watch for room %s terminated: %v", roomID, err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("Failed to read message snapshot for room %s: %v", roomID, err)
				continue
			}

			select {
			case out <- parseMessageDocs(docs):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func parseRoomDocs(docs []*firestore.DocumentSnapshot) []*entity.ChatRoom {
	rooms := make([]*entity.ChatRoom, 0, len(docs))
	for _, doc := range docs {
		var room entity.ChatRoom
		if err := doc.DataTo(&room); err != nil {
			logger.Warn("Skipping malformed chat room %s: %v", doc.Ref.ID, err)
			continue
		}
		room.ID = doc.Ref.ID
		rooms = append(rooms, &room)
	}
	return rooms
}

func parseMessageDocs(docs []*firestore.DocumentSnapshot) []*entity.ChatMessage {
	messages := make([]*entity.ChatMessage, 0, len(docs))
	for _, doc := range docs {
		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			logger.Warn("Skipping malformed message %s: %v", doc.Ref.ID, err)
			continue
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}
	return messages
}
