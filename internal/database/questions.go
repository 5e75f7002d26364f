package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultRecentLimit  = 10
	DefaultSubjectLimit = 20
)

var newestFirst = []clause.OrderByColumn{
	{Column: clause.Column{Name: "timestamp"}, Desc: true},
	{Column: clause.Column{Name: "id"}, Desc: true},
}

// QuestionStore owns the questions table. Records are only ever inserted and
// read; there is no update or delete path.
type QuestionStore struct {
	db *gorm.DB

	// SQLite only supports one writer at a time, and the timestamp of each
	// insert must not go backwards relative to the previous one.
	mu            sync.Mutex
	lastTimestamp time.Time
	now           func() time.Time
}

func NewQuestionStore(db *gorm.DB) *QuestionStore {
	return &QuestionStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *QuestionStore) StoreQuestion(ctx context.Context, question, subject, answer string) (Question, error) {
	if strings.TrimSpace(question) == "" {
		return Question{}, &StoreWriteError{Op: "store question", Err: errors.New("question text is empty")}
	}
	if strings.TrimSpace(answer) == "" {
		return Question{}, &StoreWriteError{Op: "store question", Err: errors.New("answer text is empty")}
	}
	if subject == "" {
		subject = DefaultSubject
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now()
	if ts.Before(s.lastTimestamp) {
		ts = s.lastTimestamp
	}

	record := Question{
		Question:  question,
		Answer:    answer,
		Subject:   subject,
		Timestamp: ts,
		CreatedAt: ts,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		slog.Error("error storing question", "subject", subject, "error", err)
		return Question{}, &StoreWriteError{Op: "store question", Err: err}
	}
	s.lastTimestamp = ts

	slog.Info("stored question", "id", record.Id, "subject", subject)
	return record, nil
}

func (s *QuestionStore) RecentQuestions(ctx context.Context, limit int) ([]QuestionSummary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	summaries := make([]QuestionSummary, 0, limit)
	err := s.db.WithContext(ctx).
		Model(&Question{}).
		Select("id", "question", "subject", "timestamp").
		Order(clause.OrderBy{Columns: newestFirst}).
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("error fetching recent questions: %w", err)
	}
	return summaries, nil
}

// QuestionByID returns nil without an error when no record has the given id.
func (s *QuestionStore) QuestionByID(ctx context.Context, id uint) (*Question, error) {
	var record Question
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}
	return &record, nil
}

func (s *QuestionStore) QuestionsBySubject(ctx context.Context, subject string, limit int) ([]Question, error) {
	if limit <= 0 {
		limit = DefaultSubjectLimit
	}

	records := make([]Question, 0, limit)
	err := s.db.WithContext(ctx).
		Where("subject = ?", subject).
		Order(clause.OrderBy{Columns: newestFirst}).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("error fetching questions for subject '%s': %w", subject, err)
	}
	return records, nil
}

func (s *QuestionStore) Stats(ctx context.Context) (Stats, error) {
	var rows []struct {
		Subject string
		Total   int64
	}

	err := s.db.WithContext(ctx).
		Model(&Question{}).
		Select("subject, COUNT(*) AS total").
		Group("subject").
		Order("total DESC, subject ASC").
		Scan(&rows).Error
	if err != nil {
		return Stats{}, fmt.Errorf("error fetching stats: %w", err)
	}

	stats := Stats{
		UniqueSubjects:   int64(len(rows)),
		SubjectBreakdown: make([]SubjectCount, 0, len(rows)),
	}
	for _, row := range rows {
		stats.TotalQuestions += row.Total
		stats.SubjectBreakdown = append(stats.SubjectBreakdown, SubjectCount{Subject: row.Subject, Count: row.Total})
	}
	return stats, nil
}

func (s *QuestionStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("error getting database handle: %w", err)
	}
	return sqlDB.Close()
}
