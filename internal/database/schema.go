package database

import (
	"time"
)

const DefaultSubject = "general"

type Question struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	Subject   string    `gorm:"default:general;index:idx_questions_subject"`
	Timestamp time.Time `gorm:"not null;index:idx_questions_timestamp,sort:desc"`
	CreatedAt time.Time `gorm:"not null"`
}

// QuestionSummary is the listing projection of a Question; it never carries
// the answer text.
type QuestionSummary struct {
	Id        uint
	Question  string
	Subject   string
	Timestamp time.Time
}

type SubjectCount struct {
	Subject string
	Count   int64
}

type Stats struct {
	TotalQuestions   int64
	UniqueSubjects   int64
	SubjectBreakdown []SubjectCount
}
