package models

// Question is a single trivia question with its answer, category and
// difficulty score. Every field is required on create.
type Question struct {
	ID         uint   `json:"id" db:"id" gorm:"primaryKey"`
	Question   string `json:"question" db:"question" gorm:"type:text;not null"`
	Answer     string `json:"answer" db:"answer" gorm:"type:text;not null"`
	Category   uint   `json:"category" db:"category" gorm:"not null"`
	Difficulty int    `json:"difficulty" db:"difficulty" gorm:"not null"`
}
