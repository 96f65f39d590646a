package models

// Category groups trivia questions by topic
type Category struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey"`
	Type string `json:"type" db:"type" gorm:"type:text;not null"`
}
