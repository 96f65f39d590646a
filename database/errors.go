package database

import (
	"errors"

	"gorm.io/gorm"
)

// isNotFound reports whether err is gorm's not-found sentinel. Repos
// translate it into a nil row so that handlers own the 404 decision.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
