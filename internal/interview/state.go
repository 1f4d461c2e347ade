package interview

import "encoding/json"

// ConversationState is the single mutable record driving a session's
// turn state machine. It is persisted as a JSON blob on the session row
// and owned exclusively by that session.
type ConversationState struct {
	CurrentQuestionID  string   `json:"current_question_id"`
	QuestionIndex      int      `json:"question_index"`
	FollowupCount      int      `json:"followup_count"`
	InitialAnswerScore float64  `json:"initial_answer_score"`
	PreviousFollowups  []string `json:"previous_followups"`

	// RefinedQuestions memoizes refined question text per plan slot so a
	// question is never presented with two different phrasings within one
	// session.
	RefinedQuestions map[int]string `json:"refined_questions,omitempty"`
}

// ParseState decodes a persisted state blob. Malformed or empty blobs
// yield a fresh zero state rather than an error; a corrupt blob must
// never make a session unresumable.
func ParseState(blob string) *ConversationState {
	state := &ConversationState{}
	if blob != "" {
		if err := json.Unmarshal([]byte(blob), state); err != nil {
			state = &ConversationState{}
		}
	}
	if state.RefinedQuestions == nil {
		state.RefinedQuestions = make(map[int]string)
	}
	return state
}

// Marshal encodes the state for persistence.
func (s *ConversationState) Marshal() string {
	b, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(b)
}
