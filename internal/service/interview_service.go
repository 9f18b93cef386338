package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hireflow-be/internal/config"
	"hireflow-be/internal/constant"
	"hireflow-be/internal/dto"
	"hireflow-be/internal/entity"
	"hireflow-be/internal/pkg/logger"
	"hireflow-be/internal/pkg/serverutils"
	"hireflow-be/internal/repository/specification"
	"hireflow-be/internal/repository/unitofwork"
	"hireflow-be/pkg/interview/session"
	"hireflow-be/pkg/llm"
	"hireflow-be/pkg/llm/gateway"
	"hireflow-be/pkg/store"
	"hireflow-be/pkg/transcript"

	"github.com/google/uuid"
)

// CaptureSource is the buffered live-transcription feed for a session.
// Implemented by the websocket capture hub.
type CaptureSource interface {
	StopAndFlush(sessionID string, grace time.Duration) string
	Discard(sessionID string)
}

type IInterviewService interface {
	StartSession(ctx context.Context, request *dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	AdvanceSession(ctx context.Context, request *dto.AdvanceSessionRequest) (*dto.AdvanceSessionResponse, error)
	RecordTurn(ctx context.Context, request *dto.RecordTurnRequest) (*dto.RecordTurnResponse, error)
	EvaluateAnswer(ctx context.Context, request *dto.EvaluateAnswerRequest) (*dto.EvaluateAnswerResponse, error)
}

type interviewService struct {
	uowFactory       unitofwork.RepositoryFactory
	manager          *session.Manager
	evaluator        session.Evaluator
	gw               *gateway.Gateway
	fusion           *transcript.Fusion
	capture          CaptureSource
	scoringService   IScoringService
	publisherService IPublisherService
	cfg              config.InterviewConfig
	logger           logger.ILogger
}

func NewInterviewService(
	uowFactory unitofwork.RepositoryFactory,
	manager *session.Manager,
	evaluator session.Evaluator,
	gw *gateway.Gateway,
	fusion *transcript.Fusion,
	capture CaptureSource,
	scoringService IScoringService,
	publisherService IPublisherService,
	cfg config.InterviewConfig,
	log logger.ILogger,
) IInterviewService {
	return &interviewService{
		uowFactory:       uowFactory,
		manager:          manager,
		evaluator:        evaluator,
		gw:               gw,
		fusion:           fusion,
		capture:          capture,
		scoringService:   scoringService,
		publisherService: publisherService,
		cfg:              cfg,
		logger:           log,
	}
}

func (s *interviewService) StartSession(ctx context.Context, request *dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	position, err := uow.PositionRepository().FindOne(ctx, specification.ByID{ID: request.PositionId})
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, serverutils.NotFound("position not found")
	}

	// An interview without a prior resume analysis has no skill list to
	// build the question plan from.
	analysis, err := uow.ResumeAnalysisRepository().FindOne(ctx, specification.ByCandidateAndPosition{
		CandidateID: request.SubjectId,
		PositionID:  request.PositionId,
	})
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, serverutils.BadRequest("resume analysis required before starting an interview")
	}

	skillMap := s.generateSkillMap(ctx, position.Title, analysis.Skills)

	sess, question, err := s.manager.Create(request.SubjectId, request.PositionId, position.Title, skillMap)
	if err != nil {
		if errors.Is(err, session.ErrInvalidInput) {
			return nil, serverutils.BadRequest("no skills available to interview on")
		}
		return nil, err
	}

	s.logger.Info("InterviewService", "Session started", map[string]interface{}{
		"session_id":  sess.ID,
		"subject_id":  request.SubjectId.String(),
		"position_id": request.PositionId.String(),
		"skills":      len(skillMap),
	})

	return &dto.StartSessionResponse{
		SessionId: sess.ID,
		Question:  question,
		Audio:     s.gw.Speak(ctx, question, ""),
	}, nil
}

func (s *interviewService) AdvanceSession(ctx context.Context, request *dto.AdvanceSessionRequest) (*dto.AdvanceSessionResponse, error) {
	incremental := request.IncrementalTranscript
	if incremental == "" && s.capture != nil {
		incremental = s.capture.StopAndFlush(request.SessionId, s.cfg.CaptureSettleGrace)
	}

	answer := s.fusion.Fuse(ctx, transcript.Candidates{
		Batch:       request.BatchTranscript,
		Incremental: incremental,
		Manual:      request.AnswerText,
	})

	next, completion, err := s.manager.Advance(ctx, request.SessionId, answer, s.evaluator)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, serverutils.NotFound("interview session not found or expired")
		}
		return nil, err
	}

	if completion != nil {
		return s.completeSession(ctx, request.SessionId, answer, completion)
	}

	s.publishTurn(ctx, next.SubjectID, next.PositionID, next.Asked, answer)

	question := next.Question
	if strings.TrimSpace(question) == "" {
		question = constant.FallbackQuestion
	}

	return &dto.AdvanceSessionResponse{
		HasNext:    true,
		Question:   question,
		Audio:      s.gw.Speak(ctx, question, ""),
		TurnNumber: next.TurnNumber,
	}, nil
}

func (s *interviewService) completeSession(ctx context.Context, sessionId, answer string, completion *session.Completion) (*dto.AdvanceSessionResponse, error) {
	s.publishTurn(ctx, completion.SubjectID, completion.PositionID, completion.Asked, answer)

	transcriptLog := make([]entity.TurnRecord, 0, len(completion.Transcript))
	for _, turn := range completion.Transcript {
		transcriptLog = append(transcriptLog, entity.TurnRecord{Role: turn.Role, Content: turn.Content})
	}

	finalScore, err := s.scoringService.RecordInterviewOutcome(
		ctx, completion.SubjectID, completion.PositionID, completion.Scores, transcriptLog)
	if err != nil {
		return nil, err
	}

	if _, err := s.manager.Terminate(sessionId); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		s.logger.Warn("InterviewService", "Session cleanup failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}
	if s.capture != nil {
		s.capture.Discard(sessionId)
	}

	s.logger.Info("InterviewService", "Interview completed", map[string]interface{}{
		"session_id":  sessionId,
		"final_score": finalScore,
		"turns":       len(completion.Transcript),
	})

	feedback := "Thank you, that concludes the interview. Your results are being processed."
	return &dto.AdvanceSessionResponse{
		HasNext:    false,
		FinalScore: finalScore,
		Feedback:   feedback,
		Audio:      s.gw.Speak(ctx, feedback, ""),
	}, nil
}

func (s *interviewService) RecordTurn(ctx context.Context, request *dto.RecordTurnRequest) (*dto.RecordTurnResponse, error) {
	s.publishTurn(ctx, request.SubjectId, request.PositionId, request.Question, request.Answer)
	return &dto.RecordTurnResponse{Ok: true}, nil
}

func (s *interviewService) EvaluateAnswer(ctx context.Context, request *dto.EvaluateAnswerRequest) (*dto.EvaluateAnswerResponse, error) {
	eval, ok := s.evaluator.Evaluate(ctx, request.Question, request.Answer, request.PositionTitle)
	if !ok {
		// Degrade to a neutral verdict rather than surfacing a provider
		// outage to the caller.
		return &dto.EvaluateAnswerResponse{
			Score:    constant.DefaultFallbackScore,
			Feedback: constant.FallbackFeedback,
		}, nil
	}

	return &dto.EvaluateAnswerResponse{
		Score:      eval.Score,
		Feedback:   eval.Feedback,
		NeedsProbe: eval.NeedsProbe,
		ProbeText:  eval.ProbeText,
	}, nil
}

func (s *interviewService) publishTurn(ctx context.Context, subjectId, positionId uuid.UUID, question, answer string) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.PublishTurnMessage{
		CandidateId: subjectId,
		PositionId:  positionId,
		Question:    question,
		Answer:      answer,
		AskedAt:     time.Now(),
	})
	if err != nil {
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("InterviewService", "Turn audit publish failed", map[string]interface{}{"error": err.Error()})
	}
}

// generateSkillMap asks the gateway for a per-skill question plan. On any
// failure it falls back to a static plan over the analyzed skills so the
// interview can still start.
func (s *interviewService) generateSkillMap(ctx context.Context, positionTitle string, skills []string) []store.SkillNode {
	if len(skills) == 0 {
		skills = []string{"general software engineering"}
	}

	prompt := fmt.Sprintf(constant.SkillMapUserPromptV1, positionTitle, strings.Join(skills, ", "))
	result := s.gw.Generate(ctx, prompt,
		llm.WithSystemPrompt(constant.SkillMapSystemPromptV1),
		llm.WithJSONMode(),
		llm.WithMaxTokens(1500),
	)

	if result.OK {
		var nodes []store.SkillNode
		if err := json.Unmarshal([]byte(gateway.StripMarkdownFence(result.Text)), &nodes); err == nil {
			if valid := validSkillNodes(nodes); len(valid) > 0 {
				return valid
			}
		}
		s.logger.Warn("InterviewService", "Skill map response unusable, using fallback plan", map[string]interface{}{
			"position": positionTitle,
		})
	}

	return fallbackSkillMap(skills)
}

func validSkillNodes(nodes []store.SkillNode) []store.SkillNode {
	valid := make([]store.SkillNode, 0, len(nodes))
	for _, n := range nodes {
		if n.Skill != "" && n.Primary != "" && n.DrillDown != "" && n.StressTest != "" {
			valid = append(valid, n)
		}
	}
	return valid
}

func fallbackSkillMap(skills []string) []store.SkillNode {
	nodes := make([]store.SkillNode, 0, len(skills))
	for _, skill := range skills {
		nodes = append(nodes, store.SkillNode{
			Skill:      skill,
			Primary:    fmt.Sprintf("Tell me about your experience with %s.", skill),
			DrillDown:  fmt.Sprintf("Describe a difficult problem you solved using %s, and how.", skill),
			StressTest: fmt.Sprintf("What are the limits of %s, and when would you choose something else?", skill),
		})
	}
	return nodes
}
