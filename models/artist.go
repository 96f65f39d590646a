package models

import "gorm.io/datatypes"

// Artist represents a performer looking to book shows at venues
type Artist struct {
	ID              uint                        `json:"id" db:"id" gorm:"primaryKey"`
	Name            string                      `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Genres          datatypes.JSONSlice[string] `json:"genres" db:"genres"`
	City            string                      `json:"city" db:"city" gorm:"type:text"`
	State           string                      `json:"state" db:"state" gorm:"type:text"`
	Phone           string                      `json:"phone" db:"phone" gorm:"type:text"`
	Website         string                      `json:"website" db:"website" gorm:"type:text"`
	FacebookLink    string                      `json:"facebook_link" db:"facebook_link" gorm:"type:text"`
	SeekingVenue    bool                        `json:"seeking_venue" db:"seeking_venue"`
	SeekDescription string                      `json:"seek_description" db:"seek_description" gorm:"type:text"`
	ImageLink       string                      `json:"image_link" db:"image_link" gorm:"type:text"`
	Shows           []Show                      `json:"shows,omitempty" gorm:"foreignKey:ArtistID;references:ID;constraint:OnDelete:CASCADE"`
}
