package presenter

import (
	mocktestDTO "github.com/talentlens/talentlens/internal/adapter/dto/mocktest"
	"github.com/talentlens/talentlens/internal/domain/entities"
)

// ToQuestionResponse converts a Question entity to its client shape. The
// correct answer index is stripped, it must never reach the candidate while
// the attempt is open.
func ToQuestionResponse(q entities.Question) mocktestDTO.QuestionResponse {
	return mocktestDTO.QuestionResponse{
		ID:       q.ID.String(),
		Number:   q.Number,
		Category: string(q.Category),
		Text:     q.Text,
		Options:  q.Options,
	}
}

// ToAttemptResponse converts an Attempt entity to AttemptResponse DTO
func ToAttemptResponse(a *entities.Attempt, resumed bool) *mocktestDTO.AttemptResponse {
	if a == nil {
		return nil
	}

	questions := make([]mocktestDTO.QuestionResponse, 0, len(a.Questions))
	for _, q := range a.Questions {
		questions = append(questions, ToQuestionResponse(q))
	}

	return &mocktestDTO.AttemptResponse{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		Questions:   questions,
		Scores:      a.Scores,
		Violations:  a.Violations,
		Resumed:     resumed,
		CreatedAt:   a.CreatedAt,
		SubmittedAt: a.SubmittedAt,
	}
}

// ToAttemptSummaryResponse converts an Attempt for list views, questions
// omitted
func ToAttemptSummaryResponse(a *entities.Attempt) *mocktestDTO.AttemptResponse {
	if a == nil {
		return nil
	}
	return &mocktestDTO.AttemptResponse{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		Scores:      a.Scores,
		Violations:  a.Violations,
		CreatedAt:   a.CreatedAt,
		SubmittedAt: a.SubmittedAt,
	}
}
