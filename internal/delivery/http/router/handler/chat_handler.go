package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for the polling chat handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

type sendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Message    string    `json:"message" validate:"required"`
}

// SendMessage stores a message addressed to the receiver.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.SendMessage(c.Request().Context(), middleware.CurrentAccountID(c), req.ReceiverID, req.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// GetConversation returns recent messages with the peer, oldest first, and
// marks the peer's messages read.
func (h *ChatHandler) GetConversation(c echo.Context) error {
	peerID, err := uuid.Parse(c.Param("peerID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid peer ID")
	}

	messages, err := h.uc.GetConversation(c.Request().Context(), middleware.CurrentAccountID(c), peerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Conversation retrieved successfully")
}

// UnreadCount returns the polling badge count.
func (h *ChatHandler) UnreadCount(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context(), middleware.CurrentAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}
