package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"
	"portfolio/pkg/errors"
	"portfolio/pkg/response"
	"portfolio/pkg/utils"
)

// ChatHandler is the REST surface of the chat subsystem. Live traffic goes
// over WebSocket; these endpoints cover initial page loads and clients
// without a socket.
type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
	userRepo    repository.UserRepository
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase, userRepo repository.UserRepository) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
		userRepo:    userRepo,
	}
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// GetOrCreateRoom returns the visitor's conversation, creating it on first
// contact.
func (h *ChatHandler) GetOrCreateRoom(c echo.Context) error {
	uid := c.Get("uid").(string)
	ctx := c.Request().Context()

	room, err := h.visitorRoom(ctx, uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, room)
}

func (h *ChatHandler) ListMyMessages(c echo.Context) error {
	uid := c.Get("uid").(string)
	ctx := c.Request().Context()

	room, err := h.visitorRoom(ctx, uid)
	if err != nil {
		return response.Error(c, err)
	}

	messages, err := h.chatUseCase.ListMessages(ctx, room.ID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *ChatHandler) SendMyMessage(c echo.Context) error {
	uid := c.Get("uid").(string)
	ctx := c.Request().Context()

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	room, err := h.visitorRoom(ctx, uid)
	if err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(ctx, usecase.SendMessageInput{
		RoomID:      room.ID,
		Text:        req.Text,
		SenderID:    uid,
		SenderName:  room.VisitorName,
		SenderEmail: room.VisitorEmail,
		IsAdmin:     false,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ChatHandler) MarkMyRoomRead(c echo.Context) error {
	uid := c.Get("uid").(string)
	ctx := c.Request().Context()

	room, err := h.visitorRoom(ctx, uid)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.chatUseCase.MarkRoomRead(ctx, room.ID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"room_id": room.ID})
}

func (h *ChatHandler) ListRooms(c echo.Context) error {
	rooms, err := h.chatUseCase.ListRooms(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)
	total := int64(len(rooms))

	start := params.Offset
	if start > len(rooms) {
		start = len(rooms)
	}
	end := start + params.PageSize
	if end > len(rooms) {
		end = len(rooms)
	}

	return response.SuccessPaginated(c, rooms[start:end], total, params.PageSize, params.Offset)
}

func (h *ChatHandler) ListRoomMessages(c echo.Context) error {
	roomID := c.Param("id")
	ctx := c.Request().Context()

	if _, err := h.chatUseCase.GetRoom(ctx, roomID); err != nil {
		return response.Error(c, err)
	}

	messages, err := h.chatUseCase.ListMessages(ctx, roomID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *ChatHandler) SendRoomMessage(c echo.Context) error {
	uid := c.Get("uid").(string)
	roomID := c.Param("id")
	ctx := c.Request().Context()

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if _, err := h.chatUseCase.GetRoom(ctx, roomID); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.userRepo.GetByID(ctx, uid)
	if err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(ctx, usecase.SendMessageInput{
		RoomID:      roomID,
		Text:        req.Text,
		SenderID:    uid,
		SenderName:  admin.DisplayName,
		SenderEmail: admin.Email,
		IsAdmin:     true,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ChatHandler) MarkRoomRead(c echo.Context) error {
	roomID := c.Param("id")
	ctx := c.Request().Context()

	if _, err := h.chatUseCase.GetRoom(ctx, roomID); err != nil {
		return response.Error(c, err)
	}

	if err := h.chatUseCase.MarkRoomRead(ctx, roomID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"room_id": roomID})
}

// visitorRoom resolves the caller's room, deriving the room identity fields
// from the user document.
func (h *ChatHandler) visitorRoom(ctx context.Context, uid string) (*entity.ChatRoom, error) {
	user, err := h.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return h.chatUseCase.GetOrCreateRoom(ctx, uid, user.DisplayName, user.Email)
}
