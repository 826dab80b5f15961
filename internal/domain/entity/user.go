package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	FullName string `json:"full_name,omitempty" firestore:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Bio      string `json:"bio,omitempty" firestore:"bio,omitempty"`

	AvatarURL string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`
	Address   string `json:"address,omitempty" firestore:"address,omitempty"`
	City      string `json:"city,omitempty" firestore:"city,omitempty"`

	Status string `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
