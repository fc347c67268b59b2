package entity

import "time"

type SocialLinks struct {
	Github   string `json:"github,omitempty" firestore:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty" firestore:"twitter,omitempty"`
	Website  string `json:"website,omitempty" firestore:"website,omitempty"`
	Telegram string `json:"telegram,omitempty" firestore:"telegram,omitempty"`
}

type ProfileStats struct {
	YearsExperience   string `json:"years_experience" firestore:"yearsExperience"`
	ProjectsCompleted string `json:"projects_completed" firestore:"projectsCompleted"`
	HappyClients      string `json:"happy_clients" firestore:"happyClients"`
	Technologies      string `json:"technologies" firestore:"technologies"`
}

// PersonalInfo is a singleton document (id "main").
type PersonalInfo struct {
	ID           string       `json:"id" firestore:"id"`
	Name         string       `json:"name" firestore:"name"`
	Title        string       `json:"title" firestore:"title"`
	Bio          string       `json:"bio" firestore:"bio"`
	Location     string       `json:"location" firestore:"location"`
	Email        string       `json:"email" firestore:"email"`
	Phone        string       `json:"phone,omitempty" firestore:"phone,omitempty"`
	ProfileImage string       `json:"profile_image,omitempty" firestore:"profileImage,omitempty"`
	ResumeURL    string       `json:"resume_url,omitempty" firestore:"resumeUrl,omitempty"`
	SocialLinks  SocialLinks  `json:"social_links" firestore:"socialLinks"`
	Stats        ProfileStats `json:"stats" firestore:"stats"`
	UpdatedAt    time.Time    `json:"updated_at" firestore:"updatedAt"`
}

type Skill struct {
	ID       string   `json:"id" firestore:"id"`
	Category string   `json:"category" firestore:"category"`
	Items    []string `json:"items" firestore:"items"`
	Order    int      `json:"order" firestore:"order"`
	Color    string   `json:"color,omitempty" firestore:"color,omitempty"`
}

type Experience struct {
	ID           string   `json:"id" firestore:"id"`
	Title        string   `json:"title" firestore:"title"`
	Company      string   `json:"company" firestore:"company"`
	Location     string   `json:"location" firestore:"location"`
	Period       string   `json:"period" firestore:"period"`
	Current      bool     `json:"current" firestore:"current"`
	Description  string   `json:"description" firestore:"description"`
	Achievements []string `json:"achievements" firestore:"achievements"`
	Order        int      `json:"order" firestore:"order"`
}

type Achievement struct {
	ID    string `json:"id" firestore:"id"`
	Title string `json:"title" firestore:"title"`
	Year  string `json:"year" firestore:"year"`
	Icon  string `json:"icon,omitempty" firestore:"icon,omitempty"`
	Order int    `json:"order" firestore:"order"`
}

type Interest struct {
	ID          string `json:"id" firestore:"id"`
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	Icon        string `json:"icon,omitempty" firestore:"icon,omitempty"`
	Order       int    `json:"order" firestore:"order"`
}
