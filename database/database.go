package database

import (
	"gorm.io/gorm"
)

type Database struct {
	venueRepo        *VenueRepo
	artistRepo       *ArtistRepo
	showRepo         *ShowRepo
	categoryRepo     *CategoryRepo
	questionRepo     *QuestionRepo
	drinkRepo        *DrinkRepo
	examQuestionRepo *ExamQuestionRepo
	examAnswerRepo   *ExamAnswerRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		venueRepo:        NewVenueRepo(db),
		artistRepo:       NewArtistRepo(db),
		showRepo:         NewShowRepo(db),
		categoryRepo:     NewCategoryRepo(db),
		questionRepo:     NewQuestionRepo(db),
		drinkRepo:        NewDrinkRepo(db),
		examQuestionRepo: NewExamQuestionRepo(db),
		examAnswerRepo:   NewExamAnswerRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) VenueRepo() *VenueRepo {
	return d.venueRepo
}

func (d Database) ArtistRepo() *ArtistRepo {
	return d.artistRepo
}

func (d Database) ShowRepo() *ShowRepo {
	return d.showRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) QuestionRepo() *QuestionRepo {
	return d.questionRepo
}

func (d Database) DrinkRepo() *DrinkRepo {
	return d.drinkRepo
}

func (d Database) ExamQuestionRepo() *ExamQuestionRepo {
	return d.examQuestionRepo
}

func (d Database) ExamAnswerRepo() *ExamAnswerRepo {
	return d.examAnswerRepo
}
