package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infrastructure/ratelimit"
	"portfolio/pkg/errors"
	"portfolio/pkg/logger"
)

const defaultTypingWindow = time.Second

// ChatUseCase implements the chat core: room directory, message log,
// presence, typing indicator and read-state tracking. All conversation state
// lives in the repository; the only in-process state is the per-room typing
// debounce timer and the per-visitor creation locks.
type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	rateLimiter *ratelimit.RateLimiter

	typingWindow time.Duration
	mu           sync.Mutex
	typingTimers map[string]*time.Timer
	visitorLocks map[string]*sync.Mutex
}

// NewChatUseCase wires the chat core. typingWindow <= 0 selects the default
// one second debounce.
func NewChatUseCase(chatRepo repository.ChatRepository, typingWindow time.Duration) *ChatUseCase {
	if typingWindow <= 0 {
		typingWindow = defaultTypingWindow
	}

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ChatUseCase{
		chatRepo:     chatRepo,
		rateLimiter:  rateLimiter,
		typingWindow: typingWindow,
		typingTimers: make(map[string]*time.Timer),
		visitorLocks: make(map[string]*sync.Mutex),
	}
}

type SendMessageInput struct {
	RoomID      string
	Text        string
	SenderID    string
	SenderName  string
	SenderEmail string
	IsAdmin     bool
}

// GetOrCreateRoom returns the visitor's conversation, creating it on first
// contact. An existing room is returned unchanged: a stale display name or
// email on the room record is not refreshed on reconnect. Calls for the same
// visitor are serialized so concurrent session starts cannot race-create two
// rooms.
func (uc *ChatUseCase) GetOrCreateRoom(ctx context.Context, visitorID, displayName, email string) (*entity.ChatRoom, error) {
	lock := uc.visitorLock(visitorID)
	lock.Lock()
	defer lock.Unlock()

	room, err := uc.chatRepo.GetRoomByVisitorID(ctx, visitorID)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		logger.Error("GetOrCreateRoom: lookup for visitor %s failed: %v", visitorID, err)
		return nil, err
	}

	if allowed, _ := uc.rateLimiter.Allow(visitorID, "create_room"); !allowed {
		return nil, errors.TooManyRequests("Too many chat sessions, please wait before retrying")
	}

	room = &entity.ChatRoom{
		VisitorID:     visitorID,
		VisitorName:   displayName,
		VisitorEmail:  email,
		UnreadCount:   0,
		IsActive:      true,
		VisitorOnline: true,
		AdminOnline:   false,
	}

	if err := uc.chatRepo.CreateRoom(ctx, room); err != nil {
		logger.Error("GetOrCreateRoom: create for visitor %s failed: %v", visitorID, err)
		return nil, err
	}

	logger.Info("Created chat room %s for visitor %s", room.ID, visitorID)
	return room, nil
}

func (uc *ChatUseCase) GetRoom(ctx context.Context, roomID string) (*entity.ChatRoom, error) {
	return uc.chatRepo.GetRoomByID(ctx, roomID)
}

// ListRooms returns the admin directory, most recently active first. Rooms
// with no messages yet sort by their creation-time default of
// lastMessageTime.
func (uc *ChatUseCase) ListRooms(ctx context.Context) ([]*entity.ChatRoom, error) {
	rooms, err := uc.chatRepo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	sortRooms(rooms)
	return rooms, nil
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, roomID string) ([]*entity.ChatMessage, error) {
	messages, err := uc.chatRepo.ListMessages(ctx, roomID)
	if err != nil {
		return nil, err
	}
	sortMessages(messages)
	return messages, nil
}

// SendMessage appends to the room's message log and then refreshes the
// room's denormalized preview. A whitespace-only body is rejected before any
// repository call. The preview write is separate from the append; if it
// fails, the message is already durable and the preview self-corrects on the
// next successful send, so the failure is logged rather than returned.
func (uc *ChatUseCase) SendMessage(ctx context.Context, input SendMessageInput) (*entity.ChatMessage, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.BadRequest("Message text is required", nil)
	}

	if allowed, _ := uc.rateLimiter.Allow(input.SenderID, "send_message"); !allowed {
		return nil, errors.TooManyRequests("You are sending messages too quickly, please slow down")
	}

	message := &entity.ChatMessage{
		RoomID:      input.RoomID,
		Text:        text,
		SenderID:    input.SenderID,
		SenderName:  input.SenderName,
		SenderEmail: input.SenderEmail,
		IsAdmin:     input.IsAdmin,
		Read:        false,
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		logger.Error("SendMessage: append to room %s failed: %v", input.RoomID, err)
		return nil, err
	}

	err := uc.chatRepo.UpdateRoomFields(ctx, input.RoomID, map[string]interface{}{
		"lastMessage":     text,
		"lastMessageTime": repository.ServerTimestamp,
		"isActive":        true,
	})
	if err != nil {
		logger.Warn("SendMessage: preview update for room %s failed (message %s is durable): %v",
			input.RoomID, message.ID, err)
	}

	return message, nil
}

// SetOnline is a last-writer-wins update of one role's presence flag. There
// is no heartbeat: a client that dies without signalling offline stays
// "online" until a later lifecycle event overwrites the flag. That staleness
// is an accepted limitation of the design, not something this layer papers
// over.
func (uc *ChatUseCase) SetOnline(ctx context.Context, roomID string, role entity.ParticipantRole, online bool) error {
	field := "visitorOnline"
	if role == entity.RoleAdmin {
		field = "adminOnline"
	}

	return uc.chatRepo.UpdateRoomFields(ctx, roomID, map[string]interface{}{field: online})
}

// SetTyping writes the single typing slot; "" clears it. Last writer wins,
// a second typer overwrites the first.
func (uc *ChatUseCase) SetTyping(ctx context.Context, roomID, displayName string) error {
	return uc.chatRepo.UpdateRoomFields(ctx, roomID, map[string]interface{}{"typing": displayName})
}

// ComposerTyping is the keystroke path: it publishes the typer's name and
// (re)arms the room's debounce timer. Keystrokes inside the window only
// postpone the clear; the pending timer is always stopped before a new one
// is armed, so the slot is cleared exactly once, one window after the last
// keystroke.
func (uc *ChatUseCase) ComposerTyping(ctx context.Context, roomID, displayName string) error {
	if allowed, _ := uc.rateLimiter.Allow(roomID+":"+displayName, "typing"); !allowed {
		return nil
	}

	if err := uc.SetTyping(ctx, roomID, displayName); err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if t, ok := uc.typingTimers[roomID]; ok {
		t.Stop()
	}
	uc.typingTimers[roomID] = time.AfterFunc(uc.typingWindow, func() {
		uc.mu.Lock()
		delete(uc.typingTimers, roomID)
		uc.mu.Unlock()

		if err := uc.SetTyping(context.Background(), roomID, ""); err != nil {
			logger.Warn("Typing clear for room %s failed: %v", roomID, err)
		}
	})

	return nil
}

// StopTyping cancels any pending debounce and clears the slot immediately.
// Called when a message is submitted or a session tears down.
func (uc *ChatUseCase) StopTyping(ctx context.Context, roomID string) error {
	uc.mu.Lock()
	if t, ok := uc.typingTimers[roomID]; ok {
		t.Stop()
		delete(uc.typingTimers, roomID)
	}
	uc.mu.Unlock()

	return uc.SetTyping(ctx, roomID, "")
}

// MarkRoomRead zeroes the room's unread counter. Nothing in this system
// increments the counter; it exists in the schema for clients that do.
func (uc *ChatUseCase) MarkRoomRead(ctx context.Context, roomID string) error {
	return uc.chatRepo.UpdateRoomFields(ctx, roomID, map[string]interface{}{"unreadCount": 0})
}

// SubscribeRooms streams the full room directory, re-sorted most recent
// first, on every change. Cancel the context to unsubscribe.
func (uc *ChatUseCase) SubscribeRooms(ctx context.Context) (<-chan []*entity.ChatRoom, error) {
	watch, err := uc.chatRepo.WatchRooms(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan []*entity.ChatRoom, 1)
	go func() {
		defer close(out)
		for rooms := range watch {
			sortRooms(rooms)
			select {
			case out <- rooms:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// SubscribeMessages streams the entire ordered message log on every change.
// The list is re-sorted at each delivery (timestamp ascending, sequence
// tie-break), so the ordering invariant holds even when the datastore
// assigned skewed timestamps.
func (uc *ChatUseCase) SubscribeMessages(ctx context.Context, roomID string) (<-chan []*entity.ChatMessage, error) {
	watch, err := uc.chatRepo.WatchMessages(ctx, roomID)
	if err != nil {
		return nil, err
	}

	out := make(chan []*entity.ChatMessage, 1)
	go func() {
		defer close(out)
		for messages := range watch {
			sortMessages(messages)
			select {
			case out <- messages:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// SubscribeTyping streams changes of the room's typing slot ("" when idle).
func (uc *ChatUseCase) SubscribeTyping(ctx context.Context, roomID string) (<-chan string, error) {
	watch, err := uc.chatRepo.WatchRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	out := make(chan string, 1)
	go func() {
		defer close(out)
		var last *string
		for room := range watch {
			typing := room.Typing
			if last != nil && *last == typing {
				continue
			}
			last = &typing
			select {
			case out <- typing:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// SubscribeOnline streams changes of the named role's presence flag.
func (uc *ChatUseCase) SubscribeOnline(ctx context.Context, roomID string, role entity.ParticipantRole) (<-chan bool, error) {
	watch, err := uc.chatRepo.WatchRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	out := make(chan bool, 1)
	go func() {
		defer close(out)
		var last *bool
		for room := range watch {
			online := room.VisitorOnline
			if role == entity.RoleAdmin {
				online = room.AdminOnline
			}
			if last != nil && *last == online {
				continue
			}
			last = &online
			select {
			case out <- online:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// VisitorDisplayName labels a room's visitor by the name on their first
// visitor-authored message. The room record keeps the name captured at
// creation and is only used while the log has no visitor messages yet.
func VisitorDisplayName(messages []*entity.ChatMessage, fallback string) string {
	for _, message := range messages {
		if !message.IsAdmin {
			return message.SenderName
		}
	}
	return fallback
}

// VisibleTyping suppresses a participant's own name: nobody should see
// "yourself is typing".
func VisibleTyping(typing, selfName string) string {
	if typing == selfName {
		return ""
	}
	return typing
}

func (uc *ChatUseCase) visitorLock(visitorID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lock, ok := uc.visitorLocks[visitorID]
	if !ok {
		lock = &sync.Mutex{}
		uc.visitorLocks[visitorID] = lock
	}
	return lock
}

func sortRooms(rooms []*entity.ChatRoom) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].LastMessageAt.After(rooms[j].LastMessageAt)
	})
}

func sortMessages(messages []*entity.ChatMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].Seq < messages[j].Seq
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}
