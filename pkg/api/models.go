package api

import "time"

type AskRequest struct {
	Question       string `json:"question"`
	Subject        string `json:"subject"`
	LearningStyle  string `json:"learningStyle"`
	IsDeafFriendly bool   `json:"isDeafFriendly"`
}

type VisualAid struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

type SignLanguageInfo struct {
	KeyWords          string `json:"keyWords"`
	SimpleExplanation string `json:"simpleExplanation"`
	MemoryTip         string `json:"memoryTip"`
}

type AskResponse struct {
	Id               uint              `json:"id"`
	Question         string            `json:"question"`
	Answer           string            `json:"answer"`
	Subject          string            `json:"subject"`
	Timestamp        time.Time         `json:"timestamp"`
	VisualAids       []VisualAid       `json:"visualAids"`
	SignLanguageInfo *SignLanguageInfo `json:"signLanguageInfo"`
	LearningStyle    string            `json:"learningStyle"`
}

type SimplifyRequest struct {
	OriginalAnswer string `json:"originalAnswer"`
	Subject        string `json:"subject"`
}

type SimplifyResponse struct {
	SimplifiedAnswer string `json:"simplifiedAnswer"`
}

type QuestionSummary struct {
	Id        uint      `json:"id"`
	Question  string    `json:"question"`
	Subject   string    `json:"subject"`
	Timestamp time.Time `json:"timestamp"`
}

type Question struct {
	Id        uint      `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Subject   string    `json:"subject"`
	Timestamp time.Time `json:"timestamp"`
}

type QuestionsBySubjectParams struct {
	Subject string `schema:"subject"`
	Limit   int    `schema:"limit"`
}

type SubjectCount struct {
	Subject string `json:"subject"`
	Count   int64  `json:"count"`
}

type StatsResponse struct {
	TotalQuestions   int64          `json:"totalQuestions"`
	UniqueSubjects   int64          `json:"uniqueSubjects"`
	SubjectBreakdown []SubjectCount `json:"subjectBreakdown"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
