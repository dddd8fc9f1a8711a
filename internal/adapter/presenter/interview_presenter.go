package presenter

import (
	interviewDTO "github.com/talentlens/talentlens/internal/adapter/dto/interview"
	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/usecase/proctoring"
)

// ToSessionResponse converts an InterviewSession entity to its client shape
func ToSessionResponse(s *entities.InterviewSession) *interviewDTO.SessionResponse {
	if s == nil {
		return nil
	}
	return &interviewDTO.SessionResponse{
		ID:                  s.ID.String(),
		UserID:              s.UserID.String(),
		Question:            s.Question,
		Status:              string(s.Status),
		EyeContactPercent:   s.EyeContactPercent,
		AttentionViolations: s.AttentionViolations,
		TabSwitchViolations: s.TabSwitchViolations,
		AutoSubmitReason:    s.AutoSubmitReason,
		CreatedAt:           s.CreatedAt,
		SubmittedAt:         s.SubmittedAt,
	}
}

// ToScoreResponse converts an InterviewScore entity to ScoreResponse DTO
func ToScoreResponse(score *entities.InterviewScore) *interviewDTO.ScoreResponse {
	if score == nil {
		return nil
	}
	return &interviewDTO.ScoreResponse{
		SessionID: score.SessionID.String(),
		Result:    score.Result,
		CreatedAt: score.CreatedAt,
	}
}

// ToLandmarkFrames converts request frames to tracker points
func ToLandmarkFrames(frames [][]interviewDTO.PointRequest) [][]proctoring.Point {
	out := make([][]proctoring.Point, 0, len(frames))
	for _, frame := range frames {
		points := make([]proctoring.Point, 0, len(frame))
		for _, p := range frame {
			points = append(points, proctoring.Point{X: p.X, Y: p.Y})
		}
		out = append(out, points)
	}
	return out
}
