package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	ws "portfolio/internal/infrastructure/websocket"
	"portfolio/internal/usecase"
	"portfolio/pkg/errors"
	"portfolio/pkg/response"
)

type WebSocketHandler struct {
	wsManager   *ws.Manager
	chatUseCase *usecase.ChatUseCase
	userRepo    repository.UserRepository
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the site origin once the frontend domain is fixed.
		return true
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, chatUseCase *usecase.ChatUseCase, userRepo repository.UserRepository) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:   wsManager,
		chatUseCase: chatUseCase,
		userRepo:    userRepo,
	}
}

// HandleVisitor upgrades an authenticated visitor connection and serves it
// until it closes.
func (h *WebSocketHandler) HandleVisitor(c echo.Context) error {
	client, err := h.upgrade(c, entity.RoleVisitor)
	if err != nil {
		return h.rejectUpgrade(c, err)
	}

	ws.NewSession(client, h.chatUseCase).RunVisitor(h.wsManager)
	return nil
}

// HandleAdmin upgrades an admin connection. Role enforcement happens in the
// router's middleware chain.
func (h *WebSocketHandler) HandleAdmin(c echo.Context) error {
	client, err := h.upgrade(c, entity.RoleAdmin)
	if err != nil {
		return h.rejectUpgrade(c, err)
	}

	ws.NewSession(client, h.chatUseCase).RunAdmin(h.wsManager)
	return nil
}

// rejectUpgrade maps a pre-upgrade failure onto the JSON error envelope. A
// failed Upgrade call has already written its own response, so that case
// must not write a second one.
func (h *WebSocketHandler) rejectUpgrade(c echo.Context, err error) error {
	if c.Response().Committed {
		return nil
	}
	return response.Error(c, err)
}

func (h *WebSocketHandler) upgrade(c echo.Context, role entity.ParticipantRole) (*ws.Client, error) {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return nil, errors.Unauthorized("Authentication required", nil)
	}

	user, err := h.userRepo.GetByID(c.Request().Context(), uid)
	if err != nil {
		return nil, err
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil, errors.Internal("Failed to upgrade connection", err)
	}

	return &ws.Client{
		ID:          uuid.New().String(),
		UID:         uid,
		Role:        role,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Conn:        conn,
		Send:        make(chan []byte, 256),
	}, nil
}
