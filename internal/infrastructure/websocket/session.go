package websocket

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sync"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/usecase"
	"portfolio/pkg/errors"
	"portfolio/pkg/logger"
)

const teardownTimeout = 5 * time.Second

// Session drives one chat participant's connection: it translates inbound
// frames into chat operations and forwards repository pushes back out as
// frames. The visitor flavor is pinned to the visitor's own room; the admin
// flavor watches the whole directory and joins rooms on demand.
type Session struct {
	client *Client
	chatUC *usecase.ChatUseCase

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	roomID     string
	roomCancel context.CancelFunc
}

func NewSession(client *Client, chatUC *usecase.ChatUseCase) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		client: client,
		chatUC: chatUC,
		ctx:    ctx,
		cancel: cancel,
	}
}

// RunVisitor serves a visitor connection until it closes. It blocks for the
// lifetime of the connection.
func (s *Session) RunVisitor(manager *Manager) {
	manager.Register <- s.client
	go s.client.WritePump()

	room, err := s.chatUC.GetOrCreateRoom(s.ctx, s.client.UID, s.client.DisplayName, s.client.Email)
	if err != nil {
		s.sendError(err)
		s.client.ReadPump(manager, func(*Frame) {})
		s.cancel()
		return
	}

	s.setRoom(room.ID, nil)

	if err := s.chatUC.SetOnline(s.ctx, room.ID, entity.RoleVisitor, true); err != nil {
		logger.Warn("Visitor %s online flag failed: %v", s.client.UID, err)
	}

	s.send(TypeRoomReady, room.ID, room)
	s.startRoomStreams(s.ctx, room.ID, roomStreamConfig{
		watchRole: entity.RoleAdmin,
		markRead:  true,
	})

	s.client.ReadPump(manager, s.handleVisitorFrame)

	s.teardownVisitor(room.ID)
}

func (s *Session) handleVisitorFrame(frame *Frame) {
	roomID := s.currentRoomID()

	switch frame.Type {
	case TypePing:
		s.send(TypePong, "", nil)

	case TypeSendMessage:
		var payload SendMessagePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			s.sendError(errors.BadRequest("Malformed message payload", err))
			return
		}
		_, err := s.chatUC.SendMessage(s.ctx, usecase.SendMessageInput{
			RoomID:      roomID,
			Text:        payload.Text,
			SenderID:    s.client.UID,
			SenderName:  s.client.DisplayName,
			SenderEmail: s.client.Email,
			IsAdmin:     false,
		})
		if err != nil {
			s.sendError(err)
			return
		}
		if err := s.chatUC.StopTyping(s.ctx, roomID); err != nil {
			logger.Debug("Typing clear after send failed: %v", err)
		}

	case TypeTyping:
		if err := s.chatUC.ComposerTyping(s.ctx, roomID, s.client.DisplayName); err != nil {
			logger.Debug("Typing publish for room %s failed: %v", roomID, err)
		}

	case TypeSetOnline:
		var payload SetOnlinePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return
		}
		if err := s.chatUC.SetOnline(s.ctx, roomID, entity.RoleVisitor, payload.Online); err != nil {
			logger.Warn("Visitor presence update failed: %v", err)
		}

	case TypeMarkRead:
		if err := s.chatUC.MarkRoomRead(s.ctx, roomID); err != nil {
			logger.Warn("Mark read for room %s failed: %v", roomID, err)
		}
	}
}

func (s *Session) teardownVisitor(roomID string) {
	s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), teardownTimeout)
	defer cancel()

	if err := s.chatUC.StopTyping(ctx, roomID); err != nil {
		logger.Debug("Teardown typing clear failed: %v", err)
	}
	if err := s.chatUC.SetOnline(ctx, roomID, entity.RoleVisitor, false); err != nil {
		logger.Warn("Visitor %s offline flag failed: %v", s.client.UID, err)
	}
}

// RunAdmin serves an admin connection until it closes. It blocks for the
// lifetime of the connection.
func (s *Session) RunAdmin(manager *Manager) {
	manager.Register <- s.client
	go s.client.WritePump()

	rooms, err := s.chatUC.SubscribeRooms(s.ctx)
	if err != nil {
		s.sendError(err)
	} else {
		go func() {
			for list := range rooms {
				s.send(TypeRooms, "", list)
			}
		}()
	}

	s.client.ReadPump(manager, s.handleAdminFrame)

	s.teardownAdmin()
}

func (s *Session) handleAdminFrame(frame *Frame) {
	switch frame.Type {
	case TypePing:
		s.send(TypePong, "", nil)

	case TypeJoinRoom:
		s.joinRoom(frame.RoomID)

	case TypeLeaveRoom:
		s.leaveRoom()

	case TypeSendMessage:
		roomID := s.currentRoomID()
		if roomID == "" {
			s.sendError(errors.BadRequest("Join a room before sending", nil))
			return
		}
		var payload SendMessagePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			s.sendError(errors.BadRequest("Malformed message payload", err))
			return
		}
		_, err := s.chatUC.SendMessage(s.ctx, usecase.SendMessageInput{
			RoomID:      roomID,
			Text:        payload.Text,
			SenderID:    s.client.UID,
			SenderName:  s.client.DisplayName,
			SenderEmail: s.client.Email,
			IsAdmin:     true,
		})
		if err != nil {
			s.sendError(err)
			return
		}
		if err := s.chatUC.StopTyping(s.ctx, roomID); err != nil {
			logger.Debug("Typing clear after send failed: %v", err)
		}

	case TypeTyping:
		roomID := s.currentRoomID()
		if roomID == "" {
			return
		}
		if err := s.chatUC.ComposerTyping(s.ctx, roomID, s.client.DisplayName); err != nil {
			logger.Debug("Typing publish for room %s failed: %v", roomID, err)
		}

	case TypeMarkRead:
		roomID := s.currentRoomID()
		if roomID == "" {
			return
		}
		if err := s.chatUC.MarkRoomRead(s.ctx, roomID); err != nil {
			logger.Warn("Mark read for room %s failed: %v", roomID, err)
		}
	}
}

// joinRoom switches the admin's focus: the previous room's streams are torn
// down and its presence cleared before the new room is attached.
func (s *Session) joinRoom(roomID string) {
	if roomID == "" {
		s.sendError(errors.BadRequest("room_id is required", nil))
		return
	}

	s.leaveRoom()

	roomCtx, roomCancel := context.WithCancel(s.ctx)
	s.setRoom(roomID, roomCancel)

	if err := s.chatUC.SetOnline(roomCtx, roomID, entity.RoleAdmin, true); err != nil {
		logger.Warn("Admin online flag for room %s failed: %v", roomID, err)
	}
	if err := s.chatUC.MarkRoomRead(roomCtx, roomID); err != nil {
		logger.Warn("Mark read for room %s failed: %v", roomID, err)
	}

	fallbackName := ""
	if room, err := s.chatUC.GetRoom(roomCtx, roomID); err == nil {
		fallbackName = room.VisitorName
	}

	s.startRoomStreams(roomCtx, roomID, roomStreamConfig{
		watchRole:       entity.RoleVisitor,
		labelVisitor:    true,
		visitorFallback: fallbackName,
	})
}

func (s *Session) leaveRoom() {
	s.mu.Lock()
	roomID := s.roomID
	roomCancel := s.roomCancel
	s.roomID = ""
	s.roomCancel = nil
	s.mu.Unlock()

	if roomID == "" {
		return
	}
	if roomCancel != nil {
		roomCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), teardownTimeout)
	defer cancel()

	if err := s.chatUC.StopTyping(ctx, roomID); err != nil {
		logger.Debug("Typing clear on leave failed: %v", err)
	}
	if err := s.chatUC.SetOnline(ctx, roomID, entity.RoleAdmin, false); err != nil {
		logger.Warn("Admin offline flag for room %s failed: %v", roomID, err)
	}
}

func (s *Session) teardownAdmin() {
	s.leaveRoom()
	s.cancel()
}

// roomStreamConfig selects the per-flavor behavior of a room's feeds. The
// visitor flavor marks the room read on every delivery; the admin flavor
// labels the visitor from the delivered log.
type roomStreamConfig struct {
	watchRole       entity.ParticipantRole
	markRead        bool
	labelVisitor    bool
	visitorFallback string
}

// startRoomStreams attaches the three per-room feeds: the ordered message
// log, the typing slot and the other party's presence flag. When markRead is
// set, every message delivery also clears the unread counter, so anything
// that arrives while the participant is looking at the room is read
// immediately. When labelVisitor is set, each delivery also re-derives the
// visitor's display name from the first visitor-authored message, so a
// visitor who renamed between sessions shows their current name.
func (s *Session) startRoomStreams(ctx context.Context, roomID string, cfg roomStreamConfig) {
	messages, err := s.chatUC.SubscribeMessages(ctx, roomID)
	if err != nil {
		s.sendError(err)
		return
	}
	go func() {
		for list := range messages {
			s.send(TypeMessages, roomID, list)
			if cfg.labelVisitor {
				name := usecase.VisitorDisplayName(list, cfg.visitorFallback)
				s.send(TypeVisitorName, roomID, VisitorNamePayload{Name: name})
			}
			if cfg.markRead {
				go func() {
					if err := s.chatUC.MarkRoomRead(ctx, roomID); err != nil {
						logger.Debug("Mark read for room %s failed: %v", roomID, err)
					}
				}()
			}
		}
	}()

	typing, err := s.chatUC.SubscribeTyping(ctx, roomID)
	if err != nil {
		s.sendError(err)
		return
	}
	go func() {
		for name := range typing {
			visible := usecase.VisibleTyping(name, s.client.DisplayName)
			s.send(TypeTyping, roomID, TypingPayload{Typing: visible})
		}
	}()

	presence, err := s.chatUC.SubscribeOnline(ctx, roomID, cfg.watchRole)
	if err != nil {
		s.sendError(err)
		return
	}
	go func() {
		for online := range presence {
			s.send(TypePresence, roomID, PresencePayload{
				Role:   string(cfg.watchRole),
				Online: online,
			})
		}
	}()
}

func (s *Session) currentRoomID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomID
}

func (s *Session) setRoom(roomID string, cancel context.CancelFunc) {
	s.mu.Lock()
	s.roomID = roomID
	s.roomCancel = cancel
	s.mu.Unlock()
}

func (s *Session) send(frameType, roomID string, data interface{}) {
	message, err := Encode(frameType, roomID, data)
	if err != nil {
		logger.Error("Encode %s frame failed: %v", frameType, err)
		return
	}
	s.client.Deliver(message)
}

func (s *Session) sendError(err error) {
	payload := ErrorPayload{Code: "INTERNAL_ERROR", Message: "Something went wrong"}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		payload.Code = appErr.Code
		payload.Message = appErr.Message
	}
	s.send(TypeError, "", payload)
}
