package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talentlens/talentlens/internal/adapter/repository"
	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/usecase/proctoring"
	"github.com/talentlens/talentlens/pkg/config"
)

type stubTranscriber struct {
	transcript string
	err        error
	calls      int
}

func (s *stubTranscriber) Transcribe(ctx context.Context, recordingURL string) (string, error) {
	s.calls++
	return s.transcript, s.err
}

func testProctorConfig() config.ProctoringConfig {
	return config.ProctoringConfig{
		MaxAttentionViolations: 2,
		MaxTabViolations:       2,
		MaxPreviewViolations:   2,
	}
}

func newTestInterviewService(transcriber Transcriber) *service {
	return NewService(repository.NewMemoryInterviewRepository(), transcriber, testProctorConfig(), zap.NewNop())
}

func facingFrame() []proctoring.Point {
	return []proctoring.Point{{X: 100, Y: 120}, {X: 140, Y: 120}, {X: 120, Y: 160}}
}

func awayFrame() []proctoring.Point {
	return []proctoring.Point{{X: 100, Y: 120}, {X: 140, Y: 120}, {X: 300, Y: 160}}
}

func TestCreateSession(t *testing.T) {
	svc := newTestInterviewService(nil)
	session, err := svc.CreateSession(context.Background(), uuid.New(), "Tell me about yourself")
	require.NoError(t, err)
	assert.Equal(t, entities.InterviewStatusCreated, session.Status)
	assert.False(t, session.IsClosed())
}

func TestRegisterFrames_TracksEyeContactAndStartsSession(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	stats, err := svc.RegisterFrames(ctx, session.ID, [][]proctoring.Point{
		facingFrame(), facingFrame(), facingFrame(), awayFrame(),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalFrames)
	assert.Equal(t, 75, stats.Percent)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.InterviewStatusInProgress, got.Status)
}

func TestResetEyeContact(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	_, err = svc.RegisterFrames(ctx, session.ID, [][]proctoring.Point{awayFrame()})
	require.NoError(t, err)
	require.NoError(t, svc.ResetEyeContact(ctx, session.ID))

	stats, err := svc.RegisterFrames(ctx, session.ID, [][]proctoring.Point{facingFrame()})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalFrames)
	assert.Equal(t, 100, stats.Percent)
}

func TestFaceCheck_AutoSubmitsAtThreshold(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	state, err := svc.FaceCheck(ctx, session.ID, 0)
	require.NoError(t, err)
	assert.False(t, state.AutoSubmitted)
	assert.Equal(t, 1, state.State.AttentionCount)

	state, err = svc.FaceCheck(ctx, session.ID, 0)
	require.NoError(t, err)
	assert.True(t, state.AutoSubmitted)
	assert.Equal(t, entities.ReasonAttentionViolation, state.Reason)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.InterviewStatusAutoSubmitted, got.Status)
	assert.Equal(t, 2, got.AttentionViolations)

	// The session is terminal: further proctoring events are rejected.
	_, err = svc.FaceCheck(ctx, session.ID, 0)
	assert.ErrorIs(t, err, entities.ErrSessionClosed)
}

func TestFaceCheck_FacePresentKeepsSessionOpen(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		state, err := svc.FaceCheck(ctx, session.ID, 1)
		require.NoError(t, err)
		assert.False(t, state.AutoSubmitted)
	}
}

func TestTabEvent_BlurAndHiddenAutoSubmit(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	state, err := svc.TabEvent(ctx, session.ID, "blur")
	require.NoError(t, err)
	assert.False(t, state.AutoSubmitted)

	// The browser delivers both blur and visibilitychange for one switch;
	// both count, so a limit of 2 trips here.
	state, err = svc.TabEvent(ctx, session.ID, "hidden")
	require.NoError(t, err)
	assert.True(t, state.AutoSubmitted)
	assert.Equal(t, entities.ReasonTabSwitchViolation, state.Reason)
	assert.Equal(t, 2, state.State.TabSwitchCount)
}

func TestTabEvent_VisibleIsFree(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	state, err := svc.TabEvent(ctx, session.ID, "visible")
	require.NoError(t, err)
	assert.Equal(t, 0, state.State.TabSwitchCount)
}

func TestTabEvent_UnknownEventRejected(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	_, err = svc.TabEvent(ctx, session.ID, "minimized")
	assert.ErrorIs(t, err, entities.ErrInvalidProctorEvent)
}

func TestPreviewCheck(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	result, err := svc.PreviewCheck(ctx, session.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, proctoring.PreviewNoFace, result.Status)
	assert.Equal(t, 1, result.Count)
	assert.False(t, result.Exceeded)

	result, err = svc.PreviewCheck(ctx, session.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, proctoring.PreviewMultiFace, result.Status)
	assert.True(t, result.Exceeded)

	// Preview violations never close the session.
	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, got.IsClosed())
}

func TestSubmit_WithTranscript(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	userID := uuid.New()
	session, err := svc.CreateSession(ctx, userID, "q")
	require.NoError(t, err)

	_, err = svc.RegisterFrames(ctx, session.ID, [][]proctoring.Point{facingFrame(), facingFrame()})
	require.NoError(t, err)

	score, err := svc.Submit(ctx, session.ID, SubmitInput{
		Transcript: "I led the migration. It was a great success for the team.",
	})
	require.NoError(t, err)
	assert.Equal(t, session.ID, score.SessionID)
	assert.Equal(t, userID, score.UserID)
	assert.Equal(t, 100, score.Result.EyeContactPercent)
	assert.NotZero(t, score.Result.WordCount)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.InterviewStatusSubmitted, got.Status)
	assert.Equal(t, 100, got.EyeContactPercent)
}

func TestSubmit_TranscribesRecording(t *testing.T) {
	transcriber := &stubTranscriber{transcript: "Transcribed answer about the project."}
	svc := newTestInterviewService(transcriber)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	score, err := svc.Submit(ctx, session.ID, SubmitInput{
		RecordingURL: "https://storage.example.com/recordings/a.webm",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, transcriber.calls)
	assert.Equal(t, 5, score.Result.WordCount)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, transcriber.transcript, got.Transcript)
	assert.Equal(t, "https://storage.example.com/recordings/a.webm", got.RecordingURL)
}

func TestSubmit_ProvidedTranscriptSkipsTranscriber(t *testing.T) {
	transcriber := &stubTranscriber{transcript: "should not be used"}
	svc := newTestInterviewService(transcriber)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID, SubmitInput{
		Transcript:   "Client-side transcript wins.",
		RecordingURL: "https://storage.example.com/recordings/a.webm",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, transcriber.calls)
}

func TestSubmit_NoTranscriberConfigured(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID, SubmitInput{RecordingURL: "https://x/a.webm"})
	assert.ErrorIs(t, err, entities.ErrTranscriberUnavailable)
}

func TestSubmit_HesitationOverride(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	score, err := svc.Submit(ctx, session.ID, SubmitInput{
		Transcript: "Um, an answer.",
		Hesitation: &entities.PauseInfo{EstimatedPauses: 9, HesitationScore: 55},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.PauseInfo{EstimatedPauses: 9, HesitationScore: 55}, score.Result.Pauses)
}

func TestSubmit_SecondSubmissionRejected(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID, SubmitInput{Transcript: "First answer."})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID, SubmitInput{Transcript: "Second answer."})
	assert.ErrorIs(t, err, entities.ErrSessionClosed)
}

func TestSubmit_AutoSubmittedSessionScoresOnce(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	// Trip the tab-switch threshold.
	_, err = svc.TabEvent(ctx, session.ID, "blur")
	require.NoError(t, err)
	state, err := svc.TabEvent(ctx, session.ID, "blur")
	require.NoError(t, err)
	require.True(t, state.AutoSubmitted)

	// The client may still deliver its transcript for scoring, once.
	score, err := svc.Submit(ctx, session.ID, SubmitInput{Transcript: "Partial answer."})
	require.NoError(t, err)
	assert.Equal(t, 2, score.Result.WordCount)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.InterviewStatusAutoSubmitted, got.Status, "auto-submitted status survives scoring")
	assert.Equal(t, entities.ReasonTabSwitchViolation, got.AutoSubmitReason)

	_, err = svc.Submit(ctx, session.ID, SubmitInput{Transcript: "Again."})
	assert.ErrorIs(t, err, entities.ErrSessionClosed)
}

func TestSubmit_TranscriberFailureSurfaces(t *testing.T) {
	transcriber := &stubTranscriber{err: errors.New("provider rejected the audio")}
	svc := newTestInterviewService(transcriber)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID, SubmitInput{RecordingURL: "https://x/a.webm"})
	require.Error(t, err)

	// A failed transcription must not close the session.
	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, got.IsClosed())
}

func TestGetScore(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, uuid.New(), "q")
	require.NoError(t, err)

	_, err = svc.GetScore(ctx, session.ID)
	assert.ErrorIs(t, err, entities.ErrScoreNotFound)

	submitted, err := svc.Submit(ctx, session.ID, SubmitInput{Transcript: "An answer."})
	require.NoError(t, err)

	score, err := svc.GetScore(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, submitted.ID, score.ID)
}

func TestListSessions(t *testing.T) {
	svc := newTestInterviewService(nil)
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.CreateSession(ctx, userID, "q1")
	require.NoError(t, err)
	second, err := svc.CreateSession(ctx, userID, "q2")
	require.NoError(t, err)
	_, err = svc.CreateSession(ctx, uuid.New(), "other user")
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, first.ID, sessions[1].ID)
}
