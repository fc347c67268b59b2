package entity

import "time"

type BlogPost struct {
	ID        string    `json:"id" firestore:"id"`
	Slug      string    `json:"slug" firestore:"slug"`
	Title     string    `json:"title" firestore:"title"`
	Excerpt   string    `json:"excerpt" firestore:"excerpt"`
	Content   string    `json:"content" firestore:"content"`
	Author    string    `json:"author" firestore:"author"`
	Date      string    `json:"date" firestore:"date"`
	ReadTime  string    `json:"read_time" firestore:"readTime"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	Category  string    `json:"category" firestore:"category"`
	Trending  bool      `json:"trending" firestore:"trending"`
	Featured  bool      `json:"featured" firestore:"featured"`
	Views     int64     `json:"views" firestore:"views"`
	LikedBy   []string  `json:"liked_by" firestore:"likedBy"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Likes is the derived like counter exposed to clients.
func (p *BlogPost) Likes() int {
	return len(p.LikedBy)
}
