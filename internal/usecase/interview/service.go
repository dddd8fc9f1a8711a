package interview

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/domain/repositories"
	"github.com/talentlens/talentlens/internal/usecase/analysis"
	"github.com/talentlens/talentlens/internal/usecase/proctoring"
	"github.com/talentlens/talentlens/pkg/config"
	"github.com/talentlens/talentlens/pkg/jobcontext"
	"github.com/talentlens/talentlens/pkg/scheduler"
)

// Transcriber converts a recording URL into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, recordingURL string) (string, error)
}

// ProctorState is the outcome of one proctoring event against a session.
type ProctorState struct {
	State         proctoring.ViolationState `json:"state"`
	AutoSubmitted bool                      `json:"auto_submitted"`
	Reason        string                    `json:"reason,omitempty"`
}

// PreviewResult is the outcome of one device-preview face check.
type PreviewResult struct {
	Status   proctoring.PreviewStatus `json:"status"`
	Count    int                      `json:"count"`
	Exceeded bool                     `json:"exceeded"`
	Warning  string                   `json:"warning,omitempty"`
}

// SubmitInput carries the inputs of a session submission. Transcript wins
// over RecordingURL when both are set; with only RecordingURL the service
// transcribes it first.
type SubmitInput struct {
	Transcript   string
	RecordingURL string
	Hesitation   *entities.PauseInfo
}

// Service defines interview session lifecycle, proctoring event intake and
// answer scoring.
type Service interface {
	// CreateSession opens a proctored session for one interview question
	CreateSession(ctx context.Context, userID uuid.UUID, question string) (*entities.InterviewSession, error)

	// GetSession returns a session by id
	GetSession(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewSession, error)

	// ListSessions returns the user's sessions, newest first
	ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.InterviewSession, error)

	// RegisterFrames feeds a batch of landmark frames into the session's
	// eye-contact tracker and returns the running aggregates
	RegisterFrames(ctx context.Context, sessionID uuid.UUID, frames [][]proctoring.Point) (proctoring.EyeContactStats, error)

	// ResetEyeContact clears the session's eye-contact aggregates
	ResetEyeContact(ctx context.Context, sessionID uuid.UUID) error

	// PreviewCheck classifies a device-preview face count. Preview violations
	// warn on every increment and never auto-submit.
	PreviewCheck(ctx context.Context, sessionID uuid.UUID, faceCount int) (PreviewResult, error)

	// FaceCheck records an in-interview face-presence check result. Crossing
	// the attention threshold auto-submits the session once.
	FaceCheck(ctx context.Context, sessionID uuid.UUID, faceCount int) (ProctorState, error)

	// TabEvent records a window blur or visibility change. event is one of
	// "blur", "hidden", "visible".
	TabEvent(ctx context.Context, sessionID uuid.UUID, event string) (ProctorState, error)

	// Submit scores the answer transcript and closes the session. An
	// auto-submitted session may still be scored once its recording arrives.
	Submit(ctx context.Context, sessionID uuid.UUID, in SubmitInput) (*entities.InterviewScore, error)

	// GetScore returns the stored score for a session
	GetScore(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewScore, error)

	// StopSession tears down the session's runtime trackers. Idempotent.
	StopSession(ctx context.Context, sessionID uuid.UUID) error
}

// sessionRuntime holds the in-memory proctoring state of one open session.
type sessionRuntime struct {
	mu         sync.Mutex
	tracker    *proctoring.EyeContactTracker
	monitor    *proctoring.ViolationMonitor
	preview    *proctoring.PreviewMonitor
	autoReason string
	lastSeen   time.Time
}

const runtimeIdleTimeout = 30 * time.Minute

type service struct {
	repo        repositories.InterviewRepository
	transcriber Transcriber
	cfg         config.ProctoringConfig
	logger      *zap.Logger

	mu       sync.Mutex
	runtimes map[uuid.UUID]*sessionRuntime
	sweeper  *scheduler.Periodic
}

// NewService creates the interview service. Call Start to run the runtime
// sweeper and Stop on shutdown.
func NewService(
	repo repositories.InterviewRepository,
	transcriber Transcriber,
	cfg config.ProctoringConfig,
	logger *zap.Logger,
) *service {
	s := &service{
		repo:        repo,
		transcriber: transcriber,
		cfg:         cfg,
		logger:      logger,
		runtimes:    make(map[uuid.UUID]*sessionRuntime),
	}
	s.sweeper = scheduler.NewPeriodic(time.Minute, s.sweepIdleRuntimes)
	return s
}

// Start launches the idle-runtime sweeper.
func (s *service) Start(ctx context.Context) {
	s.sweeper.Start(ctx)
}

// Stop halts the sweeper. Safe to call more than once.
func (s *service) Stop() {
	s.sweeper.Stop()
}

// sweepIdleRuntimes evicts runtimes that stopped receiving events. The
// session row itself stays untouched, a late submission rebuilds nothing
// because scoring only needs persisted state.
func (s *service) sweepIdleRuntimes(ctx context.Context) {
	cutoff := time.Now().Add(-runtimeIdleTimeout)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rt := range s.runtimes {
		rt.mu.Lock()
		idle := rt.lastSeen.Before(cutoff)
		rt.mu.Unlock()
		if idle {
			delete(s.runtimes, id)
			s.logger.Info("interview.runtime_evicted", zap.String("session_id", id.String()))
		}
	}
}

func (s *service) CreateSession(ctx context.Context, userID uuid.UUID, question string) (*entities.InterviewSession, error) {
	session := entities.NewInterviewSession(userID, question)
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	rt := &sessionRuntime{
		tracker:  proctoring.NewEyeContactTracker(),
		lastSeen: time.Now(),
	}
	rt.monitor = proctoring.NewViolationMonitor(proctoring.MonitorConfig{
		MaxAttentionViolations: s.cfg.MaxAttentionViolations,
		MaxTabViolations:       s.cfg.MaxTabViolations,
	}, func(reason string) {
		// Runs under rt.mu from the event that crossed the threshold.
		rt.autoReason = reason
	})
	rt.preview = proctoring.NewPreviewMonitor(s.cfg.MaxPreviewViolations, func(v proctoring.PreviewViolation) {
		s.logger.Warn("interview.preview_violation",
			zap.String("session_id", session.ID.String()),
			zap.String("reason", string(v.Reason)),
			zap.Int("count", v.Count),
		)
	})

	s.mu.Lock()
	s.runtimes[session.ID] = rt
	s.mu.Unlock()

	s.logger.Info("interview.session_created",
		zap.String("session_id", session.ID.String()),
		zap.String("user_id", userID.String()),
	)
	return session, nil
}

func (s *service) GetSession(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewSession, error) {
	return s.repo.FindSessionByID(ctx, sessionID)
}

func (s *service) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.InterviewSession, error) {
	return s.repo.ListSessionsByUser(ctx, userID, limit)
}

// runtime returns the live proctoring state for an open session, creating it
// when the server restarted mid-session.
func (s *service) runtime(ctx context.Context, sessionID uuid.UUID) (*sessionRuntime, *entities.InterviewSession, error) {
	session, err := s.repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.IsClosed() {
		return nil, nil, entities.ErrSessionClosed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.runtimes[sessionID]
	if !ok {
		rt = &sessionRuntime{
			tracker:  proctoring.NewEyeContactTracker(),
			lastSeen: time.Now(),
		}
		rt.monitor = proctoring.NewViolationMonitor(proctoring.MonitorConfig{
			MaxAttentionViolations: s.cfg.MaxAttentionViolations,
			MaxTabViolations:       s.cfg.MaxTabViolations,
		}, func(reason string) {
			rt.autoReason = reason
		})
		rt.preview = proctoring.NewPreviewMonitor(s.cfg.MaxPreviewViolations, func(v proctoring.PreviewViolation) {
			s.logger.Warn("interview.preview_violation",
				zap.String("session_id", sessionID.String()),
				zap.String("reason", string(v.Reason)),
				zap.Int("count", v.Count),
			)
		})
		s.runtimes[sessionID] = rt
	}
	return rt, session, nil
}

func (s *service) RegisterFrames(ctx context.Context, sessionID uuid.UUID, frames [][]proctoring.Point) (proctoring.EyeContactStats, error) {
	rt, session, err := s.runtime(ctx, sessionID)
	if err != nil {
		return proctoring.EyeContactStats{}, err
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.lastSeen = time.Now()
	for _, frame := range frames {
		rt.tracker.RegisterFrame(frame)
	}
	stats := rt.tracker.Stats()

	if session.Status == entities.InterviewStatusCreated {
		session.MarkInProgress()
		if err := s.repo.UpdateSession(ctx, session); err != nil {
			return stats, fmt.Errorf("failed to mark session in progress: %w", err)
		}
	}
	return stats, nil
}

func (s *service) ResetEyeContact(ctx context.Context, sessionID uuid.UUID) error {
	rt, _, err := s.runtime(ctx, sessionID)
	if err != nil {
		return err
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.lastSeen = time.Now()
	rt.tracker.Reset()
	return nil
}

func (s *service) PreviewCheck(ctx context.Context, sessionID uuid.UUID, faceCount int) (PreviewResult, error) {
	rt, _, err := s.runtime(ctx, sessionID)
	if err != nil {
		return PreviewResult{}, err
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.lastSeen = time.Now()
	status := rt.preview.Classify(faceCount)
	return PreviewResult{
		Status:   status,
		Count:    rt.preview.Count(),
		Exceeded: rt.preview.Exceeded(),
		Warning:  rt.preview.Warning(),
	}, nil
}

func (s *service) FaceCheck(ctx context.Context, sessionID uuid.UUID, faceCount int) (ProctorState, error) {
	rt, session, err := s.runtime(ctx, sessionID)
	if err != nil {
		return ProctorState{}, err
	}

	rt.mu.Lock()
	rt.lastSeen = time.Now()
	rt.monitor.OnFaceCheckResult(faceCount)
	state := rt.monitor.State()
	reason := rt.autoReason
	rt.mu.Unlock()

	return s.finishProctorEvent(ctx, session, state, reason)
}

func (s *service) TabEvent(ctx context.Context, sessionID uuid.UUID, event string) (ProctorState, error) {
	rt, session, err := s.runtime(ctx, sessionID)
	if err != nil {
		return ProctorState{}, err
	}

	rt.mu.Lock()
	rt.lastSeen = time.Now()
	switch event {
	case "blur":
		rt.monitor.OnBlur()
	case "hidden":
		rt.monitor.OnVisibilityChange(true)
	case "visible":
		rt.monitor.OnVisibilityChange(false)
	default:
		rt.mu.Unlock()
		return ProctorState{}, entities.ErrInvalidProctorEvent
	}
	state := rt.monitor.State()
	reason := rt.autoReason
	rt.mu.Unlock()

	return s.finishProctorEvent(ctx, session, state, reason)
}

// finishProctorEvent persists counters and, when a threshold fired, closes
// the session exactly once.
func (s *service) finishProctorEvent(ctx context.Context, session *entities.InterviewSession, state proctoring.ViolationState, reason string) (ProctorState, error) {
	session.AttentionViolations = state.AttentionCount
	session.TabSwitchViolations = state.TabSwitchCount

	if reason == "" {
		if err := s.repo.UpdateSession(ctx, session); err != nil {
			return ProctorState{}, fmt.Errorf("failed to persist violation counters: %w", err)
		}
		return ProctorState{State: state}, nil
	}

	if err := session.Close(reason); err != nil {
		// Another event already closed it.
		return ProctorState{State: state, AutoSubmitted: true, Reason: session.AutoSubmitReason}, nil
	}
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return ProctorState{}, fmt.Errorf("failed to auto-submit session: %w", err)
	}
	s.logger.Warn("interview.auto_submitted",
		zap.String("session_id", session.ID.String()),
		zap.String("reason", reason),
		zap.Int("attention_violations", state.AttentionCount),
		zap.Int("tab_switch_violations", state.TabSwitchCount),
	)
	return ProctorState{State: state, AutoSubmitted: true, Reason: reason}, nil
}

func (s *service) Submit(ctx context.Context, sessionID uuid.UUID, in SubmitInput) (*entities.InterviewScore, error) {
	session, err := s.repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// One score per session. An auto-submitted session may still be scored
	// once, a normally submitted one may not be scored twice.
	if _, err := s.repo.FindScoreBySession(ctx, sessionID); err == nil {
		return nil, entities.ErrSessionClosed
	} else if err != entities.ErrScoreNotFound {
		return nil, err
	}
	if session.Status == entities.InterviewStatusSubmitted {
		return nil, entities.ErrSessionClosed
	}

	transcript := in.Transcript
	if transcript == "" && in.RecordingURL != "" {
		if s.transcriber == nil {
			return nil, entities.ErrTranscriberUnavailable
		}
		jobCtx, cancel := jobcontext.JobBegin(ctx, sessionID, "transcription")
		err = jobcontext.JobEnd(jobCtx, func(ctx context.Context) error {
			var terr error
			transcript, terr = s.transcriber.Transcribe(ctx, in.RecordingURL)
			return terr
		})
		cancel()
		if err != nil {
			meta := jobcontext.GetJobMetadata(jobCtx)
			s.logger.Error("interview.transcription_failed",
				zap.String("session_id", sessionID.String()),
				zap.Int("retry_attempt", meta.RetryAttempt),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to transcribe recording: %w", err)
		}
	}

	eyePercent := s.takeEyeContact(sessionID)

	result := analysis.ComputeAllMetrics(analysis.Input{
		Transcript:         transcript,
		EyeContactPercent:  &eyePercent,
		HesitationOverride: in.Hesitation,
	})

	session.Transcript = transcript
	if in.RecordingURL != "" {
		session.RecordingURL = in.RecordingURL
	}
	session.EyeContactPercent = eyePercent
	if !session.IsClosed() {
		if err := session.Close(""); err != nil {
			return nil, err
		}
	}
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}

	score := entities.NewInterviewScore(session.ID, session.UserID, result)
	if err := s.repo.SaveScore(ctx, score); err != nil {
		return nil, fmt.Errorf("failed to save score: %w", err)
	}

	s.mu.Lock()
	delete(s.runtimes, sessionID)
	s.mu.Unlock()

	s.logger.Info("interview.submitted",
		zap.String("session_id", session.ID.String()),
		zap.String("user_id", session.UserID.String()),
		zap.Int("word_count", result.WordCount),
		zap.Int("eye_contact_percent", result.EyeContactPercent),
	)
	return score, nil
}

// takeEyeContact reads the tracker percent for a session, zero when the
// runtime is gone.
func (s *service) takeEyeContact(sessionID uuid.UUID) int {
	s.mu.Lock()
	rt, ok := s.runtimes[sessionID]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.tracker.Percent()
}

func (s *service) GetScore(ctx context.Context, sessionID uuid.UUID) (*entities.InterviewScore, error) {
	return s.repo.FindScoreBySession(ctx, sessionID)
}

func (s *service) StopSession(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	delete(s.runtimes, sessionID)
	s.mu.Unlock()
	return nil
}
