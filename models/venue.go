package models

import "gorm.io/datatypes"

// Venue represents a performance space that can host shows
type Venue struct {
	ID              uint                        `json:"id" db:"id" gorm:"primaryKey"`
	Name            string                      `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Genres          datatypes.JSONSlice[string] `json:"genres" db:"genres"`
	Address         string                      `json:"address" db:"address" gorm:"type:text"`
	City            string                      `json:"city" db:"city" gorm:"type:text"`
	State           string                      `json:"state" db:"state" gorm:"type:text"`
	Phone           string                      `json:"phone" db:"phone" gorm:"type:text"`
	Website         string                      `json:"website" db:"website" gorm:"type:text"`
	FacebookLink    string                      `json:"facebook_link" db:"facebook_link" gorm:"type:text"`
	SeekingTalent   bool                        `json:"seeking_talent" db:"seeking_talent"`
	SeekDescription string                      `json:"seek_description" db:"seek_description" gorm:"type:text"`
	ImageLink       string                      `json:"image_link" db:"image_link" gorm:"type:text"`
	Shows           []Show                      `json:"shows,omitempty" gorm:"foreignKey:VenueID;references:ID;constraint:OnDelete:CASCADE"`
}
