package entity

import "time"

type User struct {
	ID          string    `json:"id" firestore:"id"`
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"display_name" firestore:"displayName"`
	Role        string    `json:"role" firestore:"role"` // "user" or "admin"
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	LastActive  time.Time `json:"last_active" firestore:"lastActive"`
}
