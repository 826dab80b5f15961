package handler

import (
	"github.com/labstack/echo/v4"

	"rewear/internal/usecase"
	"rewear/pkg/errors"
	"rewear/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	ProductID  string `json:"product_id"`
	Content    string `json:"content" validate:"required,max=2000"`
}

type markReadRequest struct {
	CounterpartyID string `json:"counterparty_id" validate:"required"`
	ProductID      string `json:"product_id"`
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.SendMessage(c.Request().Context(), uid, req.ReceiverID, req.ProductID, req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *MessageHandler) GetThread(c echo.Context) error {
	uid := c.Get("uid").(string)

	counterpartyID := c.QueryParam("with")
	if counterpartyID == "" {
		return response.Error(c, errors.BadRequest("Query parameter 'with' is required", nil))
	}
	productID := c.QueryParam("product_id")

	messages, err := h.messageUseCase.GetThread(c.Request().Context(), uid, counterpartyID, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *MessageHandler) MarkThreadRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.messageUseCase.MarkThreadRead(c.Request().Context(), uid, req.CounterpartyID, req.ProductID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Thread marked as read",
	})
}

func (h *MessageHandler) GetConversations(c echo.Context) error {
	uid := c.Get("uid").(string)

	conversations, err := h.messageUseCase.GetConversations(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversations)
}
