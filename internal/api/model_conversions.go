package api

import (
	"learnsmart-backend/internal/database"
	"learnsmart-backend/internal/tutor"
	"learnsmart-backend/pkg/api"
)

func convertQuestion(q database.Question) api.Question {
	return api.Question{
		Id:        q.Id,
		Question:  q.Question,
		Answer:    q.Answer,
		Subject:   q.Subject,
		Timestamp: q.Timestamp,
	}
}

func convertQuestions(qs []database.Question) []api.Question {
	questions := make([]api.Question, 0, len(qs))
	for _, q := range qs {
		questions = append(questions, convertQuestion(q))
	}
	return questions
}

func convertSummaries(ss []database.QuestionSummary) []api.QuestionSummary {
	summaries := make([]api.QuestionSummary, 0, len(ss))
	for _, s := range ss {
		summaries = append(summaries, api.QuestionSummary{
			Id:        s.Id,
			Question:  s.Question,
			Subject:   s.Subject,
			Timestamp: s.Timestamp,
		})
	}
	return summaries
}

func convertVisualAids(aids []tutor.VisualAid) []api.VisualAid {
	converted := make([]api.VisualAid, 0, len(aids))
	for _, aid := range aids {
		converted = append(converted, api.VisualAid{Emoji: aid.Emoji, Label: aid.Label})
	}
	return converted
}

func convertSignLanguageInfo(info *tutor.SignLanguageInfo) *api.SignLanguageInfo {
	if info == nil {
		return nil
	}
	return &api.SignLanguageInfo{
		KeyWords:          info.KeyWords,
		SimpleExplanation: info.SimpleExplanation,
		MemoryTip:         info.MemoryTip,
	}
}

func convertStats(s database.Stats) api.StatsResponse {
	breakdown := make([]api.SubjectCount, 0, len(s.SubjectBreakdown))
	for _, sc := range s.SubjectBreakdown {
		breakdown = append(breakdown, api.SubjectCount{Subject: sc.Subject, Count: sc.Count})
	}
	return api.StatsResponse{
		TotalQuestions:   s.TotalQuestions,
		UniqueSubjects:   s.UniqueSubjects,
		SubjectBreakdown: breakdown,
	}
}
