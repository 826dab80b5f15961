package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"
	"rewear/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{client: client}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		doc := r.client.Collection("messages").NewDoc()
		message.ID = doc.ID
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

// ListByUser merges the sent and received queries client-side;
// Firestore has no OR filter across two fields on this index layout.
func (r *firestoreMessageRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	sent, err := r.queryMessages(ctx, r.client.Collection("messages").Where("senderId", "==", userID))
	if err != nil {
		return nil, err
	}

	received, err := r.queryMessages(ctx, r.client.Collection("messages").Where("receiverId", "==", userID))
	if err != nil {
		return nil, err
	}

	messages := append(sent, received...)
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})

	return messages, nil
}

func (r *firestoreMessageRepository) ListThread(ctx context.Context, userID, counterpartyID, productID string) ([]*entity.Message, error) {
	outgoing := r.client.Collection("messages").
		Where("senderId", "==", userID).
		Where("receiverId", "==", counterpartyID)
	incoming := r.client.Collection("messages").
		Where("senderId", "==", counterpartyID).
		Where("receiverId", "==", userID)

	if productID != "" {
		outgoing = outgoing.Where("productId", "==", productID)
		incoming = incoming.Where("productId", "==", productID)
	}

	sent, err := r.queryMessages(ctx, outgoing)
	if err != nil {
		return nil, err
	}
	received, err := r.queryMessages(ctx, incoming)
	if err != nil {
		return nil, err
	}

	messages := append(sent, received...)
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	return messages, nil
}

func (r *firestoreMessageRepository) MarkThreadRead(ctx context.Context, userID, counterpartyID, productID string) error {
	query := r.client.Collection("messages").
		Where("senderId", "==", counterpartyID).
		Where("receiverId", "==", userID).
		Where("read", "==", false)

	if productID != "" {
		query = query.Where("productId", "==", productID)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to query unread messages", err)
	}

	for _, doc := range docs {
		_, err := doc.Ref.Update(ctx, []firestore.Update{
			{Path: "read", Value: true},
		})
		if err != nil {
			return errors.Internal("Failed to mark message as read", err)
		}
	}

	return nil
}

func (r *firestoreMessageRepository) queryMessages(ctx context.Context, query firestore.Query) ([]*entity.Message, error) {
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query messages", err)
	}

	messages := make([]*entity.Message, 0, len(docs))
	for _, doc := range docs {
		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			continue
		}
		messages = append(messages, &message)
	}

	return messages, nil
}
