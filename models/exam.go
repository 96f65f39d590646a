package models

// ExamQuestion is a question posted by a teacher for students to answer.
// All access to exam questions is gated on permission claims.
type ExamQuestion struct {
	ID        uint         `json:"id" db:"id" gorm:"primaryKey"`
	Question  string       `json:"question" db:"question" gorm:"type:text;not null"`
	TeacherID string       `json:"teacher_id" db:"teacher_id" gorm:"type:text;not null"`
	Answers   []ExamAnswer `json:"answers,omitempty" gorm:"foreignKey:ExamQuestionID;references:ID;constraint:OnDelete:CASCADE"`
}

// ExamAnswer is a student's answer to an exam question
type ExamAnswer struct {
	ID             uint   `json:"id" db:"id" gorm:"primaryKey"`
	Answer         string `json:"answer" db:"answer" gorm:"type:text;not null"`
	ExamQuestionID uint   `json:"question_id" db:"exam_question_id" gorm:"not null"`
	StudentID      string `json:"student_id" db:"student_id" gorm:"type:text"`
}
