package models

import "time"

// Show represents a booking of an artist at a venue on a given date.
// A show can only be created while the artist is seeking a venue.
type Show struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	ArtistID  uint      `json:"artist_id" db:"artist_id" gorm:"not null"`
	VenueID   uint      `json:"venue_id" db:"venue_id" gorm:"not null"`
	Date      time.Time `json:"date" db:"date" gorm:"not null"`
	StartTime string    `json:"start_time" db:"start_time" gorm:"type:text;not null"`
	EndTime   string    `json:"end_time" db:"end_time" gorm:"type:text;not null"`
	Fee       string    `json:"fee" db:"fee" gorm:"type:text;not null"`
}
