package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"learnsmart-backend/internal/database"
	"learnsmart-backend/internal/tutor"
	"learnsmart-backend/pkg/api"

	"github.com/go-chi/chi/v5"
)

const (
	ServiceName = "LearnSmart AI Backend"

	MaxQuestionLength = 500
	maxSubjectLimit   = 100
)

type QuestionStore interface {
	StoreQuestion(ctx context.Context, question, subject, answer string) (database.Question, error)
	RecentQuestions(ctx context.Context, limit int) ([]database.QuestionSummary, error)
	QuestionByID(ctx context.Context, id uint) (*database.Question, error)
	QuestionsBySubject(ctx context.Context, subject string, limit int) ([]database.Question, error)
	Stats(ctx context.Context) (database.Stats, error)
}

type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, question, subject, learningStyle string, isDeafFriendly bool) tutor.AnswerResult
	SimplifyAnswer(ctx context.Context, originalAnswer, subject string) string
}

type LearnService struct {
	store QuestionStore
	tutor AnswerGenerator
	now   func() time.Time
}

func NewLearnService(store QuestionStore, generator AnswerGenerator) *LearnService {
	return &LearnService{store: store, tutor: generator, now: func() time.Time { return time.Now().UTC() }}
}

// AddRoutes registers the endpoints on a router mounted at /api. Unmatched
// paths and methods under it answer with a JSON 404.
func (s *LearnService) AddRoutes(r chi.Router) {
	r.NotFound(RouteNotFound)
	r.MethodNotAllowed(RouteNotFound)

	r.Get("/health", RestHandler(s.Health))
	r.Post("/ask", RestHandler(s.Ask))
	r.Post("/simplify", RestHandler(s.Simplify))
	r.Get("/stats", RestHandler(s.GetStats))
	r.Route("/questions", func(r chi.Router) {
		r.Get("/", RestHandler(s.ListQuestionsBySubject))
		r.Get("/recent", RestHandler(s.RecentQuestions))
		r.Get("/{id}", RestHandler(s.GetQuestion))
	})
}

func (s *LearnService) Health(r *http.Request) (any, error) {
	return api.HealthResponse{Status: "healthy", Timestamp: s.now(), Service: ServiceName}, nil
}

func validateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return CodedErrorf(http.StatusBadRequest, "Question is required")
	}
	if utf8.RuneCountInString(question) > MaxQuestionLength {
		return CodedErrorf(http.StatusBadRequest, "Question too long (max %d characters)", MaxQuestionLength)
	}
	return nil
}

func (s *LearnService) Ask(r *http.Request) (any, error) {
	req, err := ParseRequest[api.AskRequest](r)
	if err != nil {
		return nil, err
	}

	if err := validateQuestion(req.Question); err != nil {
		return nil, err
	}

	subject := req.Subject
	if subject == "" {
		subject = database.DefaultSubject
	}

	slog.Info("received question", "subject", subject, "learning_style", req.LearningStyle, "length", utf8.RuneCountInString(req.Question))

	ctx := r.Context()

	result := s.tutor.GenerateAnswer(ctx, req.Question, subject, req.LearningStyle, req.IsDeafFriendly)

	record, err := s.store.StoreQuestion(ctx, req.Question, subject, result.Answer)
	if err != nil {
		slog.Error("error storing answered question", "subject", subject, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to process question. Please try again.")
	}

	learningStyle := req.LearningStyle
	if learningStyle == "" {
		learningStyle = tutor.DefaultLearningStyle
	}

	return api.AskResponse{
		Id:               record.Id,
		Question:         record.Question,
		Answer:           record.Answer,
		Subject:          record.Subject,
		Timestamp:        record.Timestamp,
		VisualAids:       convertVisualAids(result.VisualAids),
		SignLanguageInfo: convertSignLanguageInfo(result.SignLanguageInfo),
		LearningStyle:    learningStyle,
	}, nil
}

func (s *LearnService) Simplify(r *http.Request) (any, error) {
	req, err := ParseRequest[api.SimplifyRequest](r)
	if err != nil {
		return nil, err
	}

	if req.OriginalAnswer == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "Original answer is required")
	}

	simplified := s.tutor.SimplifyAnswer(r.Context(), req.OriginalAnswer, req.Subject)

	return api.SimplifyResponse{SimplifiedAnswer: simplified}, nil
}

func (s *LearnService) RecentQuestions(r *http.Request) (any, error) {
	summaries, err := s.store.RecentQuestions(r.Context(), database.DefaultRecentLimit)
	if err != nil {
		slog.Error("error fetching recent questions", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to fetch recent questions")
	}

	return convertSummaries(summaries), nil
}

func (s *LearnService) GetQuestion(r *http.Request) (any, error) {
	id, ok := URLParamUint(r, "id")
	if !ok {
		return nil, CodedErrorf(http.StatusNotFound, "Question not found")
	}

	record, err := s.store.QuestionByID(r.Context(), id)
	if err != nil {
		slog.Error("error fetching question", "id", id, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to fetch question")
	}
	if record == nil {
		return nil, CodedErrorf(http.StatusNotFound, "Question not found")
	}

	return convertQuestion(*record), nil
}

func (s *LearnService) ListQuestionsBySubject(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.QuestionsBySubjectParams](r)
	if err != nil {
		return nil, err
	}

	if params.Subject == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "Subject is required")
	}
	if params.Limit <= 0 {
		params.Limit = database.DefaultSubjectLimit
	}
	params.Limit = min(params.Limit, maxSubjectLimit)

	records, err := s.store.QuestionsBySubject(r.Context(), params.Subject, params.Limit)
	if err != nil {
		slog.Error("error fetching questions by subject", "subject", params.Subject, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to fetch questions")
	}

	return convertQuestions(records), nil
}

func (s *LearnService) GetStats(r *http.Request) (any, error) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		slog.Error("error fetching stats", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to fetch stats")
	}

	return convertStats(stats), nil
}
