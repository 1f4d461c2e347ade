// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/yonatank/prepair/ent/cvanalysis"
	"github.com/yonatank/prepair/ent/interviewsession"
	"github.com/yonatank/prepair/ent/interviewturn"
	"github.com/yonatank/prepair/ent/jobspec"
	"github.com/yonatank/prepair/ent/llmrequestevent"
	"github.com/yonatank/prepair/ent/question"
	"github.com/yonatank/prepair/ent/questionhistory"
	"github.com/yonatank/prepair/ent/readinesssnapshot"
	"github.com/yonatank/prepair/ent/schema"
	"github.com/yonatank/prepair/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cvanalysisFields := schema.CVAnalysis{}.Fields()
	_ = cvanalysisFields
	// cvanalysisDescUserID is the schema descriptor for user_id field.
	cvanalysisDescUserID := cvanalysisFields[1].Descriptor()
	// cvanalysis.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	cvanalysis.UserIDValidator = cvanalysisDescUserID.Validators[0].(func(string) error)
	// cvanalysisDescJobSpecID is the schema descriptor for job_spec_id field.
	cvanalysisDescJobSpecID := cvanalysisFields[2].Descriptor()
	// cvanalysis.JobSpecIDValidator is a validator for the "job_spec_id" field. It is called by the builders before save.
	cvanalysis.JobSpecIDValidator = cvanalysisDescJobSpecID.Validators[0].(func(string) error)
	// cvanalysisDescCreatedAt is the schema descriptor for created_at field.
	cvanalysisDescCreatedAt := cvanalysisFields[7].Descriptor()
	// cvanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	cvanalysis.DefaultCreatedAt = cvanalysisDescCreatedAt.Default.(func() time.Time)
	interviewsessionFields := schema.InterviewSession{}.Fields()
	_ = interviewsessionFields
	// interviewsessionDescUserID is the schema descriptor for user_id field.
	interviewsessionDescUserID := interviewsessionFields[1].Descriptor()
	// interviewsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interviewsession.UserIDValidator = interviewsessionDescUserID.Validators[0].(func(string) error)
	// interviewsessionDescJobSpecID is the schema descriptor for job_spec_id field.
	interviewsessionDescJobSpecID := interviewsessionFields[2].Descriptor()
	// interviewsession.DefaultJobSpecID holds the default value on creation for the job_spec_id field.
	interviewsession.DefaultJobSpecID = interviewsessionDescJobSpecID.Default.(string)
	// interviewsessionDescLanguage is the schema descriptor for language field.
	interviewsessionDescLanguage := interviewsessionFields[3].Descriptor()
	// interviewsession.DefaultLanguage holds the default value on creation for the language field.
	interviewsession.DefaultLanguage = interviewsessionDescLanguage.Default.(string)
	// interviewsessionDescPersona is the schema descriptor for persona field.
	interviewsessionDescPersona := interviewsessionFields[4].Descriptor()
	// interviewsession.DefaultPersona holds the default value on creation for the persona field.
	interviewsession.DefaultPersona = interviewsessionDescPersona.Default.(string)
	// interviewsessionDescConversationState is the schema descriptor for conversation_state field.
	interviewsessionDescConversationState := interviewsessionFields[6].Descriptor()
	// interviewsession.DefaultConversationState holds the default value on creation for the conversation_state field.
	interviewsession.DefaultConversationState = interviewsessionDescConversationState.Default.(string)
	// interviewsessionDescStartedAt is the schema descriptor for started_at field.
	interviewsessionDescStartedAt := interviewsessionFields[7].Descriptor()
	// interviewsession.DefaultStartedAt holds the default value on creation for the started_at field.
	interviewsession.DefaultStartedAt = interviewsessionDescStartedAt.Default.(func() time.Time)
	interviewturnMixin := schema.InterviewTurn{}.Mixin()
	interviewturnMixinFields0 := interviewturnMixin[0].Fields()
	_ = interviewturnMixinFields0
	interviewturnFields := schema.InterviewTurn{}.Fields()
	_ = interviewturnFields
	// interviewturnDescTimestamp is the schema descriptor for timestamp field.
	interviewturnDescTimestamp := interviewturnMixinFields0[1].Descriptor()
	// interviewturn.DefaultTimestamp holds the default value on creation for the timestamp field.
	interviewturn.DefaultTimestamp = interviewturnDescTimestamp.Default.(func() time.Time)
	// interviewturnDescSessionID is the schema descriptor for session_id field.
	interviewturnDescSessionID := interviewturnFields[1].Descriptor()
	// interviewturn.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interviewturn.SessionIDValidator = interviewturnDescSessionID.Validators[0].(func(string) error)
	// interviewturnDescQuestionID is the schema descriptor for question_id field.
	interviewturnDescQuestionID := interviewturnFields[3].Descriptor()
	// interviewturn.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	interviewturn.QuestionIDValidator = interviewturnDescQuestionID.Validators[0].(func(string) error)
	// interviewturnDescTranscript is the schema descriptor for transcript field.
	interviewturnDescTranscript := interviewturnFields[5].Descriptor()
	// interviewturn.DefaultTranscript holds the default value on creation for the transcript field.
	interviewturn.DefaultTranscript = interviewturnDescTranscript.Default.(string)
	// interviewturnDescCode is the schema descriptor for code field.
	interviewturnDescCode := interviewturnFields[6].Descriptor()
	// interviewturn.DefaultCode holds the default value on creation for the code field.
	interviewturn.DefaultCode = interviewturnDescCode.Default.(string)
	// interviewturnDescIsFollowup is the schema descriptor for is_followup field.
	interviewturnDescIsFollowup := interviewturnFields[8].Descriptor()
	// interviewturn.DefaultIsFollowup holds the default value on creation for the is_followup field.
	interviewturn.DefaultIsFollowup = interviewturnDescIsFollowup.Default.(bool)
	// interviewturnDescParentTurnID is the schema descriptor for parent_turn_id field.
	interviewturnDescParentTurnID := interviewturnFields[9].Descriptor()
	// interviewturn.DefaultParentTurnID holds the default value on creation for the parent_turn_id field.
	interviewturn.DefaultParentTurnID = interviewturnDescParentTurnID.Default.(string)
	// interviewturnDescQuestionNumber is the schema descriptor for question_number field.
	interviewturnDescQuestionNumber := interviewturnFields[10].Descriptor()
	// interviewturn.DefaultQuestionNumber holds the default value on creation for the question_number field.
	interviewturn.DefaultQuestionNumber = interviewturnDescQuestionNumber.Default.(int)
	// interviewturnDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	interviewturnDescTimeSpentSecs := interviewturnFields[11].Descriptor()
	// interviewturn.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	interviewturn.DefaultTimeSpentSecs = interviewturnDescTimeSpentSecs.Default.(int)
	jobspecFields := schema.JobSpec{}.Fields()
	_ = jobspecFields
	// jobspecDescJdHash is the schema descriptor for jd_hash field.
	jobspecDescJdHash := jobspecFields[1].Descriptor()
	// jobspec.JdHashValidator is a validator for the "jd_hash" field. It is called by the builders before save.
	jobspec.JdHashValidator = jobspecDescJdHash.Validators[0].(func(string) error)
	// jobspecDescTitle is the schema descriptor for title field.
	jobspecDescTitle := jobspecFields[2].Descriptor()
	// jobspec.DefaultTitle holds the default value on creation for the title field.
	jobspec.DefaultTitle = jobspecDescTitle.Default.(string)
	// jobspecDescRawText is the schema descriptor for raw_text field.
	jobspecDescRawText := jobspecFields[3].Descriptor()
	// jobspec.RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	jobspec.RawTextValidator = jobspecDescRawText.Validators[0].(func(string) error)
	// jobspecDescCreatedAt is the schema descriptor for created_at field.
	jobspecDescCreatedAt := jobspecFields[5].Descriptor()
	// jobspec.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobspec.DefaultCreatedAt = jobspecDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[2].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[4].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(string)
	// questionDescSolutionText is the schema descriptor for solution_text field.
	questionDescSolutionText := questionFields[5].Descriptor()
	// question.DefaultSolutionText holds the default value on creation for the solution_text field.
	question.DefaultSolutionText = questionDescSolutionText.Default.(string)
	// questionDescSource is the schema descriptor for source field.
	questionDescSource := questionFields[6].Descriptor()
	// question.DefaultSource holds the default value on creation for the source field.
	question.DefaultSource = questionDescSource.Default.(string)
	questionhistoryFields := schema.QuestionHistory{}.Fields()
	_ = questionhistoryFields
	// questionhistoryDescUserID is the schema descriptor for user_id field.
	questionhistoryDescUserID := questionhistoryFields[0].Descriptor()
	// questionhistory.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	questionhistory.UserIDValidator = questionhistoryDescUserID.Validators[0].(func(string) error)
	// questionhistoryDescJdHash is the schema descriptor for jd_hash field.
	questionhistoryDescJdHash := questionhistoryFields[1].Descriptor()
	// questionhistory.JdHashValidator is a validator for the "jd_hash" field. It is called by the builders before save.
	questionhistory.JdHashValidator = questionhistoryDescJdHash.Validators[0].(func(string) error)
	// questionhistoryDescQuestionID is the schema descriptor for question_id field.
	questionhistoryDescQuestionID := questionhistoryFields[2].Descriptor()
	// questionhistory.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questionhistory.QuestionIDValidator = questionhistoryDescQuestionID.Validators[0].(func(string) error)
	// questionhistoryDescSessionID is the schema descriptor for session_id field.
	questionhistoryDescSessionID := questionhistoryFields[3].Descriptor()
	// questionhistory.DefaultSessionID holds the default value on creation for the session_id field.
	questionhistory.DefaultSessionID = questionhistoryDescSessionID.Default.(string)
	// questionhistoryDescLastAskedAt is the schema descriptor for last_asked_at field.
	questionhistoryDescLastAskedAt := questionhistoryFields[4].Descriptor()
	// questionhistory.DefaultLastAskedAt holds the default value on creation for the last_asked_at field.
	questionhistory.DefaultLastAskedAt = questionhistoryDescLastAskedAt.Default.(func() time.Time)
	readinesssnapshotFields := schema.ReadinessSnapshot{}.Fields()
	_ = readinesssnapshotFields
	// readinesssnapshotDescUserID is the schema descriptor for user_id field.
	readinesssnapshotDescUserID := readinesssnapshotFields[0].Descriptor()
	// readinesssnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	readinesssnapshot.UserIDValidator = readinesssnapshotDescUserID.Validators[0].(func(string) error)
	// readinesssnapshotDescJobSpecID is the schema descriptor for job_spec_id field.
	readinesssnapshotDescJobSpecID := readinesssnapshotFields[1].Descriptor()
	// readinesssnapshot.DefaultJobSpecID holds the default value on creation for the job_spec_id field.
	readinesssnapshot.DefaultJobSpecID = readinesssnapshotDescJobSpecID.Default.(string)
	// readinesssnapshotDescTimestamp is the schema descriptor for timestamp field.
	readinesssnapshotDescTimestamp := readinesssnapshotFields[7].Descriptor()
	// readinesssnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	readinesssnapshot.DefaultTimestamp = readinesssnapshotDescTimestamp.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
