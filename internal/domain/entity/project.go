package entity

import "time"

type Project struct {
	ID              string    `json:"id" firestore:"id"`
	Title           string    `json:"title" firestore:"title"`
	Description     string    `json:"description" firestore:"description"`
	LongDescription string    `json:"long_description,omitempty" firestore:"longDescription,omitempty"`
	Image           string    `json:"image,omitempty" firestore:"image,omitempty"`
	Technologies    []string  `json:"technologies" firestore:"technologies"`
	GithubURL       string    `json:"github_url,omitempty" firestore:"githubUrl,omitempty"`
	LiveURL         string    `json:"live_url,omitempty" firestore:"liveUrl,omitempty"`
	Featured        bool      `json:"featured" firestore:"featured"`
	Order           int       `json:"order" firestore:"order"`
	Category        string    `json:"category,omitempty" firestore:"category,omitempty"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}
