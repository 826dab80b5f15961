package repository

import (
	"context"

	"rewear/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// ListByUser returns every message where the user is sender or
	// receiver, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Message, error)

	// ListThread returns the messages between the user and a
	// counterparty, optionally scoped to one product, oldest first.
	ListThread(ctx context.Context, userID, counterpartyID, productID string) ([]*entity.Message, error)

	// MarkThreadRead flips the read flag on every unread message from
	// the counterparty addressed to the user, optionally scoped to one
	// product.
	MarkThreadRead(ctx context.Context, userID, counterpartyID, productID string) error
}
