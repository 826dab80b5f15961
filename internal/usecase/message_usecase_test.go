package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rewear/internal/domain/entity"
	"rewear/internal/infrastructure/ratelimit"
	"rewear/internal/infrastructure/websocket"
	"rewear/pkg/errors"
)

type fakeMessageRepo struct {
	messages []*entity.Message
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	var out []*entity.Message
	for _, m := range r.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) ListThread(ctx context.Context, userID, counterpartyID, productID string) ([]*entity.Message, error) {
	return nil, nil
}

func (r *fakeMessageRepo) MarkThreadRead(ctx context.Context, userID, counterpartyID, productID string) error {
	return nil
}

type fakeUserRepo struct {
	users       map[string]*entity.User
	getByIDHits map[string]int
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:       make(map[string]*entity.User),
		getByIDHits: make(map[string]int),
	}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.getByIDHits[id]++
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func msg(sender, receiver, product, content string, at time.Time, read bool) *entity.Message {
	return &entity.Message{
		SenderID:   sender,
		ReceiverID: receiver,
		ProductID:  product,
		Content:    content,
		Read:       read,
		CreatedAt:  at,
	}
}

func TestBuildConversationsEmpty(t *testing.T) {
	conversations := BuildConversations(nil, "alice")
	assert.Empty(t, conversations)
}

func TestBuildConversationsGroupsByCounterpartyAndProduct(t *testing.T) {
	now := time.Now()

	messages := []*entity.Message{
		msg("alice", "bob", "", "hi", now, true),
		msg("bob", "alice", "", "hello", now.Add(time.Minute), true),
		msg("alice", "bob", "p1", "is the dress free?", now.Add(2*time.Minute), true),
		msg("alice", "carol", "", "hey", now.Add(3*time.Minute), true),
	}

	conversations := BuildConversations(messages, "alice")

	// bob general, bob about p1, carol general
	assert.Len(t, conversations, 3)

	byKey := map[string]*entity.Conversation{}
	for _, conv := range conversations {
		key := conv.CounterpartyID
		if conv.ProductID != "" {
			key += "-" + conv.ProductID
		}
		byKey[key] = conv
	}

	assert.Contains(t, byKey, "bob")
	assert.Contains(t, byKey, "bob-p1")
	assert.Contains(t, byKey, "carol")
	assert.Equal(t, "is the dress free?", byKey["bob-p1"].LastMessage)
}

func TestBuildConversationsPicksLatestMessageRegardlessOfOrder(t *testing.T) {
	now := time.Now()

	// Newest first, the order the repository returns them in.
	messages := []*entity.Message{
		msg("bob", "alice", "", "newest", now.Add(2*time.Minute), false),
		msg("alice", "bob", "", "middle", now.Add(time.Minute), true),
		msg("bob", "alice", "", "oldest", now, false),
	}

	conversations := BuildConversations(messages, "alice")

	assert.Len(t, conversations, 1)
	assert.Equal(t, "newest", conversations[0].LastMessage)
	assert.Equal(t, now.Add(2*time.Minute), conversations[0].LastMessageAt)
}

func TestBuildConversationsCountsEveryUnread(t *testing.T) {
	now := time.Now()

	// Three unread from bob, one already read, plus one sent by alice
	// which must never count toward her own unread badge.
	messages := []*entity.Message{
		msg("bob", "alice", "", "one", now, false),
		msg("bob", "alice", "", "two", now.Add(time.Minute), false),
		msg("bob", "alice", "", "three", now.Add(2*time.Minute), false),
		msg("bob", "alice", "", "seen", now.Add(-time.Minute), true),
		msg("alice", "bob", "", "mine", now.Add(3*time.Minute), false),
	}

	conversations := BuildConversations(messages, "alice")

	assert.Len(t, conversations, 1)
	assert.Equal(t, 3, conversations[0].Unread)
	// The displayed message is alice's own latest, while the unread
	// count still reflects the three from bob.
	assert.Equal(t, "mine", conversations[0].LastMessage)
}

func TestGetConversationsFetchesEachCounterpartyOnce(t *testing.T) {
	now := time.Now()

	bob := &entity.User{ID: "bob", Username: "bob"}
	userRepo := newFakeUserRepo(bob)
	productRepo := newFakeProductRepo(
		&entity.Product{ID: "p1", OwnerID: "bob"},
		&entity.Product{ID: "p2", OwnerID: "bob"},
	)
	messageRepo := &fakeMessageRepo{messages: []*entity.Message{
		msg("bob", "alice", "p1", "about p1", now, false),
		msg("bob", "alice", "p2", "about p2", now.Add(time.Minute), false),
		msg("bob", "alice", "", "general", now.Add(2*time.Minute), false),
	}}

	uc := NewMessageUseCase(messageRepo, userRepo, productRepo, websocket.NewManager(), ratelimit.NewRateLimiter(), false, 0)

	conversations, err := uc.GetConversations(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Len(t, conversations, 3)

	// Three threads with the same counterparty hit the profile store once.
	assert.Equal(t, 1, userRepo.getByIDHits["bob"])
	for _, conv := range conversations {
		assert.Equal(t, bob, conv.Counterparty)
		if conv.ProductID != "" {
			assert.NotNil(t, conv.Product)
		}
	}
}

func TestGetConversationsMissingCounterpartyLeftUnhydrated(t *testing.T) {
	now := time.Now()

	userRepo := newFakeUserRepo()
	messageRepo := &fakeMessageRepo{messages: []*entity.Message{
		msg("ghost", "alice", "", "hello", now, false),
	}}

	uc := NewMessageUseCase(messageRepo, userRepo, newFakeProductRepo(), websocket.NewManager(), ratelimit.NewRateLimiter(), false, 0)

	conversations, err := uc.GetConversations(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Len(t, conversations, 1)
	assert.Nil(t, conversations[0].Counterparty, "deleted profiles must not fail the whole listing")
}

func TestBuildConversationsUnreadIsPerThread(t *testing.T) {
	now := time.Now()

	messages := []*entity.Message{
		msg("bob", "alice", "", "general", now, false),
		msg("bob", "alice", "p1", "about p1", now.Add(time.Minute), false),
		msg("bob", "alice", "p1", "again", now.Add(2*time.Minute), false),
	}

	conversations := BuildConversations(messages, "alice")

	assert.Len(t, conversations, 2)
	for _, conv := range conversations {
		if conv.ProductID == "p1" {
			assert.Equal(t, 2, conv.Unread)
		} else {
			assert.Equal(t, 1, conv.Unread)
		}
	}
}
