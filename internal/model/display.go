package model

// CompanyInfo is the singleton agency profile shown in the site chrome.
type CompanyInfo struct {
	ID          string   `json:"id" bson:"_id"`
	Name        string   `json:"name" bson:"name"`
	Tagline     string   `json:"tagline" bson:"tagline"`
	Description string   `json:"description" bson:"description"`
	Email       string   `json:"email" bson:"email"`
	Phone       string   `json:"phone" bson:"phone"`
	Address     string   `json:"address" bson:"address"`
	Telegram    string   `json:"telegram" bson:"telegram"`
	Facebook    string   `json:"facebook" bson:"facebook"`
	WorkingDays []string `json:"workingDays" bson:"working_days"`
	LogoURL     string   `json:"logoUrl" bson:"logo_url"`
}

// HeroSlide is one homepage banner. Slides render in ascending Position.
type HeroSlide struct {
	ID       string `json:"id" bson:"_id"`
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle" bson:"subtitle"`
	ImageURL string `json:"imageUrl" bson:"image_url"`
	LinkURL  string `json:"linkUrl" bson:"link_url"`
	Position int    `json:"position" bson:"position"`
	IsActive bool   `json:"isActive" bson:"is_active"`
}
