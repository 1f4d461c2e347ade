package interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yonatank/prepair/internal/store"
)

// Action is the interviewer's decision for one turn.
type Action string

const (
	ActionFollowup Action = "followup"
	ActionHint     Action = "hint"
	ActionEnd      Action = "end"
	ActionAdvance  Action = "advance"
)

// neutralScore is recorded when the judgment step fails.
const neutralScore = 0.5

var (
	// ErrSessionNotFound is returned when the session id is unknown.
	ErrSessionNotFound = errors.New("interview session not found")

	// ErrQuestionNotFound is returned when a plan references a question
	// missing from the bank. The turn is not recorded.
	ErrQuestionNotFound = errors.New("question not found")
)

// Judgment is the interviewer decision produced by the reasoning step.
type Judgment struct {
	Action            Action
	Message           string
	FollowupQuestion  string
	SatisfactionScore float64
}

// JudgeInput is the full context handed to the reasoning step.
type JudgeInput struct {
	QuestionText      string // as presented, post-refinement
	Section           string // "open" or "code"
	SolutionText      string
	Transcript        string
	Code              string
	Persona           string
	Language          string
	FollowupCount     int
	PreviousFollowups []string
}

// Judge decides the next interviewer action from a turn's context.
// Implementations may fail; the engine maps every failure to an advance
// decision with a neutral score.
type Judge interface {
	Judge(ctx context.Context, input JudgeInput) (*Judgment, error)
}

// Refiner rewrites question text with narrative framing and, for
// non-default session languages, translates it.
type Refiner interface {
	Refine(ctx context.Context, text, qtype, language string) (string, error)
}

// Engine is the per-turn decision state machine. It assumes at most one
// concurrent caller per session; write serialization is the storage
// layer's responsibility.
type Engine struct {
	sessions  store.SessionRepo
	questions store.QuestionRepo
	turns     store.TurnRepo
	judge     Judge
	refiner   Refiner
	now       func() time.Time
}

// NewEngine creates a turn engine.
func NewEngine(sessions store.SessionRepo, questions store.QuestionRepo, turns store.TurnRepo, judge Judge, refiner Refiner) *Engine {
	return &Engine{
		sessions:  sessions,
		questions: questions,
		turns:     turns,
		judge:     judge,
		refiner:   refiner,
		now:       time.Now,
	}
}

// TurnRequest is one candidate exchange to process.
type TurnRequest struct {
	SessionID   string
	Transcript  string
	Code        string
	ElapsedSecs int
}

// Progress reports position within the plan.
type Progress struct {
	TurnIndex int `json:"turn_index"`
	Total     int `json:"total"`
}

// NextQuestion is the upcoming question returned on advance.
type NextQuestion struct {
	QuestionID string   `json:"question_id"`
	Text       string   `json:"text"`
	Type       string   `json:"type"`
	Topics     []string `json:"topics"`
}

// TurnResponse is the engine's answer for one processed turn.
type TurnResponse struct {
	InterviewerMessage string        `json:"interviewer_message"`
	FollowupQuestion   string        `json:"followup_question,omitempty"`
	NextQuestion       *NextQuestion `json:"next_question,omitempty"`
	IsDone             bool          `json:"is_done"`
	Progress           Progress      `json:"progress"`
	Action             Action        `json:"action"`
	Confidence         float64       `json:"confidence"`
}

// ProcessTurn runs one step of the interview state machine: detect
// completion, refine the current question (memoized), judge the answer,
// append exactly one turn record, and apply the decided transition.
func (e *Engine) ProcessTurn(ctx context.Context, req TurnRequest) (*TurnResponse, error) {
	session, err := e.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	state := ParseState(session.ConversationState)
	total := len(session.Plan)

	// Completion is detected at the start of the turn following the last
	// advance, never synchronously with it.
	if state.FollowupCount == 0 && state.QuestionIndex >= total {
		if session.EndedAt == nil {
			if err := e.sessions.End(ctx, session.ID, e.now().UTC()); err != nil {
				return nil, fmt.Errorf("end session: %w", err)
			}
		}
		return &TurnResponse{
			InterviewerMessage: "Thank you! The interview is complete.",
			IsDone:             true,
			Progress:           Progress{TurnIndex: state.QuestionIndex, Total: total},
			Action:             ActionEnd,
		}, nil
	}

	item := session.Plan[state.QuestionIndex]
	questionID := item.QuestionID
	if state.FollowupCount > 0 && state.CurrentQuestionID != "" {
		questionID = state.CurrentQuestionID
	}

	question, err := e.questions.Get(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("load question: %w", err)
	}
	if question == nil {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}

	presented, err := e.refinedText(ctx, session, state, state.QuestionIndex, question.Text, item.Section)
	if err != nil {
		return nil, err
	}

	judgment := e.runJudge(ctx, JudgeInput{
		QuestionText:      presented,
		Section:           item.Section,
		SolutionText:      question.SolutionText,
		Transcript:        req.Transcript,
		Code:              req.Code,
		Persona:           session.Persona,
		Language:          session.Language,
		FollowupCount:     state.FollowupCount,
		PreviousFollowups: state.PreviousFollowups,
	})

	if err := e.appendTurn(ctx, req, session, state, questionID, presented, judgment); err != nil {
		return nil, err
	}

	return e.applyDecision(ctx, session, state, judgment, questionID, total)
}

// runJudge maps every judgment failure to an advance decision with a
// neutral score so the session always makes forward progress.
func (e *Engine) runJudge(ctx context.Context, input JudgeInput) *Judgment {
	judgment, err := e.judge.Judge(ctx, input)
	if err != nil || judgment == nil {
		return &Judgment{
			Action:            ActionAdvance,
			Message:           "Let's continue with the next question.",
			SatisfactionScore: neutralScore,
		}
	}
	return judgment
}

// refinedText returns the memoized refined text for a plan slot,
// invoking the refiner only on the first request for that slot.
func (e *Engine) refinedText(ctx context.Context, session *store.SessionRecord, state *ConversationState, slot int, original, qtype string) (string, error) {
	if cached, ok := state.RefinedQuestions[slot]; ok {
		return cached, nil
	}

	refined, err := e.refiner.Refine(ctx, original, qtype, session.Language)
	if err != nil || refined == "" {
		refined = original
	}

	state.RefinedQuestions[slot] = refined
	if err := e.sessions.SaveState(ctx, session.ID, state.Marshal()); err != nil {
		return "", fmt.Errorf("save refined question: %w", err)
	}
	return refined, nil
}

func (e *Engine) appendTurn(ctx context.Context, req TurnRequest, session *store.SessionRecord, state *ConversationState, questionID, presented string, judgment *Judgment) error {
	turnIndex, err := e.turns.CountForSession(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("count turns: %w", err)
	}

	isFollowup := state.FollowupCount > 0
	parentID := ""
	if isFollowup {
		parent, err := e.turns.LastMainTurn(ctx, session.ID)
		if err != nil {
			return fmt.Errorf("find parent turn: %w", err)
		}
		if parent != nil {
			parentID = parent.TurnID
		}
	}

	err = e.turns.Append(ctx, store.TurnData{
		TurnID:           uuid.NewString(),
		SessionID:        session.ID,
		TurnIndex:        turnIndex,
		QuestionID:       questionID,
		QuestionSnapshot: presented,
		Transcript:       req.Transcript,
		Code:             req.Code,
		Score:            judgment.SatisfactionScore,
		IsFollowup:       isFollowup,
		ParentTurnID:     parentID,
		QuestionNumber:   state.QuestionIndex,
		TimeSpentSecs:    req.ElapsedSecs,
	})
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

func (e *Engine) applyDecision(ctx context.Context, session *store.SessionRecord, state *ConversationState, judgment *Judgment, questionID string, total int) (*TurnResponse, error) {
	switch {
	case judgment.Action == ActionFollowup && judgment.FollowupQuestion != "":
		state.CurrentQuestionID = questionID
		state.FollowupCount++
		state.InitialAnswerScore = judgment.SatisfactionScore
		state.PreviousFollowups = append(state.PreviousFollowups, judgment.FollowupQuestion)
		if err := e.sessions.SaveState(ctx, session.ID, state.Marshal()); err != nil {
			return nil, fmt.Errorf("save state: %w", err)
		}

		message := judgment.Message
		if message == "" {
			message = judgment.FollowupQuestion
		}
		return &TurnResponse{
			InterviewerMessage: message,
			FollowupQuestion:   judgment.FollowupQuestion,
			Progress:           Progress{TurnIndex: state.QuestionIndex + 1, Total: total},
			Action:             ActionFollowup,
			Confidence:         judgment.SatisfactionScore,
		}, nil

	case judgment.Action == ActionHint:
		// Stay on the same question; counters untouched.
		message := judgment.Message
		if message == "" {
			message = "Let me give you a hint."
		}
		return &TurnResponse{
			InterviewerMessage: message,
			Progress:           Progress{TurnIndex: state.QuestionIndex + 1, Total: total},
			Action:             ActionHint,
			Confidence:         judgment.SatisfactionScore,
		}, nil

	case judgment.Action == ActionEnd:
		if err := e.sessions.End(ctx, session.ID, e.now().UTC()); err != nil {
			return nil, fmt.Errorf("end session: %w", err)
		}
		message := judgment.Message
		if message == "" {
			message = "Thank you for your time today."
		}
		return &TurnResponse{
			InterviewerMessage: message,
			IsDone:             true,
			Progress:           Progress{TurnIndex: state.QuestionIndex + 1, Total: total},
			Action:             ActionEnd,
			Confidence:         judgment.SatisfactionScore,
		}, nil

	default:
		// Advance, including followup decisions missing a question text
		// and any unrecognized action.
		state.QuestionIndex++
		state.FollowupCount = 0
		state.PreviousFollowups = nil
		state.CurrentQuestionID = ""

		next, err := e.nextQuestion(ctx, session, state)
		if err != nil {
			return nil, err
		}

		if err := e.sessions.SaveState(ctx, session.ID, state.Marshal()); err != nil {
			return nil, fmt.Errorf("save state: %w", err)
		}

		message := judgment.Message
		if message == "" {
			if next != nil {
				message = "Let's move to the next question."
			} else {
				message = "Great! Let's continue."
			}
		}
		return &TurnResponse{
			InterviewerMessage: message,
			NextQuestion:       next,
			IsDone:             state.QuestionIndex >= total,
			Progress:           Progress{TurnIndex: state.QuestionIndex, Total: total},
			Action:             ActionAdvance,
			Confidence:         judgment.SatisfactionScore,
		}, nil
	}
}

// nextQuestion prefetches and refines the upcoming question so the
// caller can present it immediately. The refined text is memoized in the
// same state blob the advance transition is about to save.
func (e *Engine) nextQuestion(ctx context.Context, session *store.SessionRecord, state *ConversationState) (*NextQuestion, error) {
	if state.QuestionIndex >= len(session.Plan) {
		return nil, nil
	}

	item := session.Plan[state.QuestionIndex]
	question, err := e.questions.Get(ctx, item.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("load next question: %w", err)
	}
	if question == nil {
		return nil, nil
	}

	text, ok := state.RefinedQuestions[state.QuestionIndex]
	if !ok {
		refined, err := e.refiner.Refine(ctx, question.Text, item.Section, session.Language)
		if err != nil || refined == "" {
			refined = question.Text
		}
		state.RefinedQuestions[state.QuestionIndex] = refined
		text = refined
	}

	return &NextQuestion{
		QuestionID: question.ID,
		Text:       text,
		Type:       item.Section,
		Topics:     question.Topics,
	}, nil
}
