package api

import (
	"slices"
	"strings"
	"time"

	"github.com/rpupo63/fullstack-suite-backend/models"
)

// In-memory store fakes backing the handler tests. Each fake counts its
// calls so tests can assert that gated handlers never touch the store.

type fakeVenueStore struct {
	venues []*models.Venue
	nextID uint
	calls  int
}

func (f *fakeVenueStore) FindAll() ([]*models.Venue, error) {
	f.calls++
	return slices.Clone(f.venues), nil
}

func (f *fakeVenueStore) FindByID(id uint) (*models.Venue, error) {
	f.calls++
	for _, venue := range f.venues {
		if venue.ID == id {
			copied := *venue
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeVenueStore) FindByName(name string) (*models.Venue, error) {
	f.calls++
	for _, venue := range f.venues {
		if venue.Name == name {
			copied := *venue
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeVenueStore) Search(term string) ([]*models.Venue, error) {
	f.calls++
	var matched []*models.Venue
	for _, venue := range f.venues {
		if containsAllTokens(venue.Name, term) {
			matched = append(matched, venue)
		}
	}
	return matched, nil
}

func (f *fakeVenueStore) Add(venue *models.Venue) error {
	f.calls++
	f.nextID++
	venue.ID = f.nextID
	copied := *venue
	f.venues = append(f.venues, &copied)
	return nil
}

func (f *fakeVenueStore) Update(venue *models.Venue) error {
	f.calls++
	for i, existing := range f.venues {
		if existing.ID == venue.ID {
			copied := *venue
			f.venues[i] = &copied
			return nil
		}
	}
	copied := *venue
	f.venues = append(f.venues, &copied)
	return nil
}

func (f *fakeVenueStore) Delete(id uint) error {
	f.calls++
	f.venues = slices.DeleteFunc(f.venues, func(v *models.Venue) bool { return v.ID == id })
	return nil
}

type fakeArtistStore struct {
	artists []*models.Artist
	nextID  uint
	calls   int
}

func (f *fakeArtistStore) FindAll() ([]*models.Artist, error) {
	f.calls++
	return slices.Clone(f.artists), nil
}

func (f *fakeArtistStore) FindByID(id uint) (*models.Artist, error) {
	f.calls++
	for _, artist := range f.artists {
		if artist.ID == id {
			copied := *artist
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeArtistStore) FindByName(name string) (*models.Artist, error) {
	f.calls++
	for _, artist := range f.artists {
		if artist.Name == name {
			copied := *artist
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeArtistStore) Search(term string) ([]*models.Artist, error) {
	f.calls++
	var matched []*models.Artist
	for _, artist := range f.artists {
		if containsAllTokens(artist.Name, term) {
			matched = append(matched, artist)
		}
	}
	return matched, nil
}

func (f *fakeArtistStore) Add(artist *models.Artist) error {
	f.calls++
	f.nextID++
	artist.ID = f.nextID
	copied := *artist
	f.artists = append(f.artists, &copied)
	return nil
}

func (f *fakeArtistStore) Update(artist *models.Artist) error {
	f.calls++
	for i, existing := range f.artists {
		if existing.ID == artist.ID {
			copied := *artist
			f.artists[i] = &copied
			return nil
		}
	}
	copied := *artist
	f.artists = append(f.artists, &copied)
	return nil
}

type fakeShowStore struct {
	shows  []*models.Show
	nextID uint
	calls  int
}

func (f *fakeShowStore) FindUpcoming(from time.Time) ([]*models.Show, error) {
	f.calls++
	var upcoming []*models.Show
	for _, show := range f.shows {
		if !show.Date.Before(from) {
			upcoming = append(upcoming, show)
		}
	}
	return upcoming, nil
}

func (f *fakeShowStore) FindByNameAndVenue(name string, venueID uint) (*models.Show, error) {
	f.calls++
	for _, show := range f.shows {
		if show.Name == name && show.VenueID == venueID {
			copied := *show
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeShowStore) Add(show *models.Show) error {
	f.calls++
	f.nextID++
	show.ID = f.nextID
	copied := *show
	f.shows = append(f.shows, &copied)
	return nil
}

type fakeCategoryStore struct {
	categories []*models.Category
	nextID     uint
	calls      int
}

func (f *fakeCategoryStore) FindAll() ([]*models.Category, error) {
	f.calls++
	return slices.Clone(f.categories), nil
}

func (f *fakeCategoryStore) FindByID(id uint) (*models.Category, error) {
	f.calls++
	for _, category := range f.categories {
		if category.ID == id {
			copied := *category
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) Add(category *models.Category) error {
	f.calls++
	f.nextID++
	category.ID = f.nextID
	copied := *category
	f.categories = append(f.categories, &copied)
	return nil
}

func (f *fakeCategoryStore) Delete(id uint) error {
	f.calls++
	f.categories = slices.DeleteFunc(f.categories, func(c *models.Category) bool { return c.ID == id })
	return nil
}

type fakeQuestionStore struct {
	questions []*models.Question
	nextID    uint
	calls     int
}

func (f *fakeQuestionStore) FindAll() ([]*models.Question, error) {
	f.calls++
	return slices.Clone(f.questions), nil
}

func (f *fakeQuestionStore) FindByID(id uint) (*models.Question, error) {
	f.calls++
	for _, question := range f.questions {
		if question.ID == id {
			copied := *question
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionStore) FindByCategory(categoryID uint) ([]*models.Question, error) {
	f.calls++
	var matched []*models.Question
	for _, question := range f.questions {
		if question.Category == categoryID {
			matched = append(matched, question)
		}
	}
	return matched, nil
}

func (f *fakeQuestionStore) Search(term string) ([]*models.Question, error) {
	f.calls++
	var matched []*models.Question
	for _, question := range f.questions {
		if strings.Contains(strings.ToLower(question.Question), strings.ToLower(term)) {
			matched = append(matched, question)
		}
	}
	return matched, nil
}

func (f *fakeQuestionStore) FindEligible(categoryID uint, allCategories bool, previous []string) ([]*models.Question, error) {
	f.calls++
	var eligible []*models.Question
	for _, question := range f.questions {
		if !allCategories && question.Category != categoryID {
			continue
		}
		if slices.Contains(previous, question.Question) {
			continue
		}
		eligible = append(eligible, question)
	}
	return eligible, nil
}

func (f *fakeQuestionStore) Add(question *models.Question) error {
	f.calls++
	f.nextID++
	question.ID = f.nextID
	copied := *question
	f.questions = append(f.questions, &copied)
	return nil
}

func (f *fakeQuestionStore) Delete(id uint) error {
	f.calls++
	f.questions = slices.DeleteFunc(f.questions, func(q *models.Question) bool { return q.ID == id })
	return nil
}

type fakeDrinkStore struct {
	drinks []*models.Drink
	nextID uint
	calls  int
}

func (f *fakeDrinkStore) FindAll() ([]*models.Drink, error) {
	f.calls++
	return slices.Clone(f.drinks), nil
}

func (f *fakeDrinkStore) FindByID(id uint) (*models.Drink, error) {
	f.calls++
	for _, drink := range f.drinks {
		if drink.ID == id {
			copied := *drink
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDrinkStore) FindByTitle(title string) (*models.Drink, error) {
	f.calls++
	for _, drink := range f.drinks {
		if drink.Title == title {
			copied := *drink
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDrinkStore) Add(drink *models.Drink) error {
	f.calls++
	f.nextID++
	drink.ID = f.nextID
	copied := *drink
	f.drinks = append(f.drinks, &copied)
	return nil
}

func (f *fakeDrinkStore) Update(drink *models.Drink) error {
	f.calls++
	for i, existing := range f.drinks {
		if existing.ID == drink.ID {
			copied := *drink
			f.drinks[i] = &copied
			return nil
		}
	}
	copied := *drink
	f.drinks = append(f.drinks, &copied)
	return nil
}

func (f *fakeDrinkStore) Delete(id uint) error {
	f.calls++
	f.drinks = slices.DeleteFunc(f.drinks, func(d *models.Drink) bool { return d.ID == id })
	return nil
}

type fakeExamQuestionStore struct {
	questions []*models.ExamQuestion
	nextID    uint
	calls     int
}

func (f *fakeExamQuestionStore) FindAll() ([]*models.ExamQuestion, error) {
	f.calls++
	return slices.Clone(f.questions), nil
}

func (f *fakeExamQuestionStore) FindByID(id uint) (*models.ExamQuestion, error) {
	f.calls++
	for _, question := range f.questions {
		if question.ID == id {
			copied := *question
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeExamQuestionStore) Add(question *models.ExamQuestion) error {
	f.calls++
	f.nextID++
	question.ID = f.nextID
	copied := *question
	f.questions = append(f.questions, &copied)
	return nil
}

func (f *fakeExamQuestionStore) Update(question *models.ExamQuestion) error {
	f.calls++
	for i, existing := range f.questions {
		if existing.ID == question.ID {
			copied := *question
			f.questions[i] = &copied
			return nil
		}
	}
	copied := *question
	f.questions = append(f.questions, &copied)
	return nil
}

func (f *fakeExamQuestionStore) Delete(id uint) error {
	f.calls++
	f.questions = slices.DeleteFunc(f.questions, func(q *models.ExamQuestion) bool { return q.ID == id })
	return nil
}

type fakeExamAnswerStore struct {
	answers []*models.ExamAnswer
	nextID  uint
	calls   int
}

func (f *fakeExamAnswerStore) FindByQuestion(questionID uint) ([]*models.ExamAnswer, error) {
	f.calls++
	var matched []*models.ExamAnswer
	for _, answer := range f.answers {
		if answer.ExamQuestionID == questionID {
			matched = append(matched, answer)
		}
	}
	return matched, nil
}

func (f *fakeExamAnswerStore) Add(answer *models.ExamAnswer) error {
	f.calls++
	f.nextID++
	answer.ID = f.nextID
	copied := *answer
	f.answers = append(f.answers, &copied)
	return nil
}

func containsAllTokens(name, term string) bool {
	lowered := strings.ToLower(name)
	for _, token := range strings.Fields(strings.ToLower(term)) {
		if !strings.Contains(lowered, token) {
			return false
		}
	}
	return true
}
