package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"
	"rewear/internal/infrastructure/ratelimit"
	"rewear/internal/infrastructure/websocket"
	"rewear/pkg/errors"
	"rewear/pkg/logger"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	wsManager   *websocket.Manager
	rateLimiter *ratelimit.RateLimiter

	autoReplyEnabled bool
	autoReplyDelay   time.Duration
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	wsManager *websocket.Manager,
	rateLimiter *ratelimit.RateLimiter,
	autoReplyEnabled bool,
	autoReplyDelay time.Duration,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		wsManager:        wsManager,
		rateLimiter:      rateLimiter,
		autoReplyEnabled: autoReplyEnabled,
		autoReplyDelay:   autoReplyDelay,
	}
}

// Canned owner replies for the demo auto-responder.
var ownerReplies = []string{
	"Yes, this is available for the weekend!",
	"The fabric is soft cotton with a silk lining.",
	"I can arrange delivery to your location for an additional charge.",
	"It fits true to size. If you're usually a medium, this will fit perfectly.",
	"I've had many people rent this with great feedback!",
}

func (uc *MessageUseCase) SendMessage(ctx context.Context, senderID, receiverID, productID, content string) (*entity.Message, error) {
	if senderID == receiverID {
		return nil, errors.BadRequest("Cannot message yourself", nil)
	}

	if allowed, wait := uc.rateLimiter.Allow(senderID, "send_message"); !allowed {
		return nil, errors.TooManyRequests(fmt.Sprintf("Too many messages, retry in %.0fs", wait.Seconds()))
	}

	if _, err := uc.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, errors.NotFound("Receiver", err)
	}

	if productID != "" {
		if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
			return nil, errors.NotFound("Product", err)
		}
	}

	message := &entity.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		ProductID:  productID,
		Content:    content,
		Read:       false,
		CreatedAt:  time.Now(),
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	uc.pushToReceiver(message)

	if uc.autoReplyEnabled {
		uc.scheduleOwnerReply(message)
	}

	return message, nil
}

func (uc *MessageUseCase) GetThread(ctx context.Context, userID, counterpartyID, productID string) ([]*entity.Message, error) {
	return uc.messageRepo.ListThread(ctx, userID, counterpartyID, productID)
}

func (uc *MessageUseCase) MarkThreadRead(ctx context.Context, userID, counterpartyID, productID string) error {
	return uc.messageRepo.MarkThreadRead(ctx, userID, counterpartyID, productID)
}

// GetConversations folds the user's full message history into one
// summary per (counterparty, product-or-none) thread and hydrates the
// counterparty profiles and products for display.
func (uc *MessageUseCase) GetConversations(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	messages, err := uc.messageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	conversations := BuildConversations(messages, userID)

	userIDs := make(map[string]bool)
	productIDs := make([]string, 0)
	for _, conv := range conversations {
		userIDs[conv.CounterpartyID] = true
		if conv.ProductID != "" {
			productIDs = append(productIDs, conv.ProductID)
		}
	}

	// One profile fetch per distinct counterparty, not per thread.
	userMap := make(map[string]*entity.User, len(userIDs))
	for id := range userIDs {
		counterparty, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			logger.Warn("Counterparty %s missing for conversation: %v", id, err)
			continue
		}
		userMap[id] = counterparty
	}

	for _, conv := range conversations {
		conv.Counterparty = userMap[conv.CounterpartyID]
	}

	if len(productIDs) > 0 {
		productMap, err := uc.productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return nil, err
		}
		for _, conv := range conversations {
			if conv.ProductID != "" {
				conv.Product = productMap[conv.ProductID]
			}
		}
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessageAt.After(conversations[j].LastMessageAt)
	})

	return conversations, nil
}

// BuildConversations groups messages into per-thread summaries. The
// thread key is the counterparty combined with the product when one is
// attached, so a general thread and a per-product thread with the same
// person stay distinct. The displayed last message is the newest one
// per key; the unread counter counts every unread message addressed to
// the user in that key, so the two are tracked independently.
func BuildConversations(messages []*entity.Message, userID string) []*entity.Conversation {
	byKey := make(map[string]*entity.Conversation)

	for _, message := range messages {
		counterpartyID := message.ReceiverID
		if message.ReceiverID == userID {
			counterpartyID = message.SenderID
		}

		key := counterpartyID
		if message.ProductID != "" {
			key = counterpartyID + "-" + message.ProductID
		}

		conv, exists := byKey[key]
		if !exists {
			conv = &entity.Conversation{
				CounterpartyID: counterpartyID,
				ProductID:      message.ProductID,
			}
			byKey[key] = conv
		}

		if conv.LastMessageAt.IsZero() || message.CreatedAt.After(conv.LastMessageAt) {
			conv.LastMessage = message.Content
			conv.LastMessageAt = message.CreatedAt
		}

		if message.ReceiverID == userID && !message.Read {
			conv.Unread++
		}
	}

	conversations := make([]*entity.Conversation, 0, len(byKey))
	for _, conv := range byKey {
		conversations = append(conversations, conv)
	}

	return conversations
}

func (uc *MessageUseCase) pushToReceiver(message *entity.Message) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "new_message",
		"message": message,
	})
	if err != nil {
		logger.Warn("Failed to marshal message push: %v", err)
		return
	}
	uc.wsManager.SendToUser(message.ReceiverID, payload)
}

// scheduleOwnerReply simulates the counterparty responding after a
// fixed delay. Fire-and-forget: the timer is never cancelled and a
// failed write is only logged.
func (uc *MessageUseCase) scheduleOwnerReply(original *entity.Message) {
	time.AfterFunc(uc.autoReplyDelay, func() {
		reply := &entity.Message{
			SenderID:   original.ReceiverID,
			ReceiverID: original.SenderID,
			ProductID:  original.ProductID,
			Content:    ownerReplies[rand.Intn(len(ownerReplies))],
			Read:       false,
			CreatedAt:  time.Now(),
		}

		if err := uc.messageRepo.Create(context.Background(), reply); err != nil {
			logger.Warn("Auto reply failed for message %s: %v", original.ID, err)
			return
		}

		uc.pushToReceiver(reply)
	})
}
