// Code generated by ent, DO NOT EDIT.

package interviewturn

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldTimestamp, v))
}

// TurnID applies equality check predicate on the "turn_id" field. It's identical to TurnIDEQ.
func TurnID(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldTurnID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldSessionID, v))
}

// TurnIndex applies equality check predicate on the "turn_index" field. It's identical to TurnIndexEQ.
func TurnIndex(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldTurnIndex, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionSnapshot applies equality check predicate on the "question_snapshot" field. It's identical to QuestionSnapshotEQ.
func QuestionSnapshot(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldQuestionSnapshot, v))
}

// Transcript applies equality check predicate on the "transcript" field. It's identical to TranscriptEQ.
func Transcript(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldTranscript, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldCode, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldScore, v))
}

// IsFollowup applies equality check predicate on the "is_followup" field. It's identical to IsFollowupEQ.
func IsFollowup(v bool) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldIsFollowup, v))
}

// ParentTurnID applies equality check predicate on the "parent_turn_id" field. It's identical to ParentTurnIDEQ.
func ParentTurnID(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldParentTurnID, v))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldQuestionNumber, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldTimestamp, v))
}

// TurnIDEQ applies the EQ predicate on the "turn_id" field.
func TurnIDEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldTurnID, v))
}

// TurnIDNEQ applies the NEQ predicate on the "turn_id" field.
func TurnIDNEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldTurnID, v))
}

// TurnIDIn applies the In predicate on the "turn_id" field.
func TurnIDIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldTurnID, vs...))
}

// TurnIDNotIn applies the NotIn predicate on the "turn_id" field.
func TurnIDNotIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldTurnID, vs...))
}

// TurnIDGT applies the GT predicate on the "turn_id" field.
func TurnIDGT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldTurnID, v))
}

// TurnIDGTE applies the GTE predicate on the "turn_id" field.
func TurnIDGTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldTurnID, v))
}

// TurnIDLT applies the LT predicate on the "turn_id" field.
func TurnIDLT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldTurnID, v))
}

// TurnIDLTE applies the LTE predicate on the "turn_id" field.
func TurnIDLTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldTurnID, v))
}

// TurnIDContains applies the Contains predicate on the "turn_id" field.
func TurnIDContains(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContains(FieldTurnID, v))
}

// TurnIDHasPrefix applies the HasPrefix predicate on the "turn_id" field.
func TurnIDHasPrefix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasPrefix(FieldTurnID, v))
}

// TurnIDHasSuffix applies the HasSuffix predicate on the "turn_id" field.
func TurnIDHasSuffix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasSuffix(FieldTurnID, v))
}

// TurnIDEqualFold applies the EqualFold predicate on the "turn_id" field.
func TurnIDEqualFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEqualFold(FieldTurnID, v))
}

// TurnIDContainsFold applies the ContainsFold predicate on the "turn_id" field.
func TurnIDContainsFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContainsFold(FieldTurnID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContainsFold(FieldSessionID, v))
}

// TurnIndexEQ applies the EQ predicate on the "turn_index" field.
func TurnIndexEQ(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldTurnIndex, v))
}

// TurnIndexNEQ applies the NEQ predicate on the "turn_index" field.
func TurnIndexNEQ(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldTurnIndex, v))
}

// TurnIndexIn applies the In predicate on the "turn_index" field.
func TurnIndexIn(vs ...int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldTurnIndex, vs...))
}

// TurnIndexNotIn applies the NotIn predicate on the "turn_index" field.
func TurnIndexNotIn(vs ...int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldTurnIndex, vs...))
}

// TurnIndexGT applies the GT predicate on the "turn_index" field.
func TurnIndexGT(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldTurnIndex, v))
}

// TurnIndexGTE applies the GTE predicate on the "turn_index" field.
func TurnIndexGTE(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldTurnIndex, v))
}

// TurnIndexLT applies the LT predicate on the "turn_index" field.
func TurnIndexLT(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldTurnIndex, v))
}

// TurnIndexLTE applies the LTE predicate on the "turn_index" field.
func TurnIndexLTE(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldTurnIndex, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContainsFold(FieldQuestionID, v))
}

// QuestionSnapshotEQ applies the EQ predicate on the "question_snapshot" field.
func QuestionSnapshotEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldQuestionSnapshot, v))
}

// QuestionSnapshotNEQ applies the NEQ predicate on the "question_snapshot" field.
func QuestionSnapshotNEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldQuestionSnapshot, v))
}

// QuestionSnapshotIn applies the In predicate on the "question_snapshot" field.
func QuestionSnapshotIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldQuestionSnapshot, vs...))
}

// QuestionSnapshotNotIn applies the NotIn predicate on the "question_snapshot" field.
func QuestionSnapshotNotIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldQuestionSnapshot, vs...))
}

// QuestionSnapshotGT applies the GT predicate on the "question_snapshot" field.
func QuestionSnapshotGT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldQuestionSnapshot, v))
}

// QuestionSnapshotGTE applies the GTE predicate on the "question_snapshot" field.
func QuestionSnapshotGTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldQuestionSnapshot, v))
}

// QuestionSnapshotLT applies the LT predicate on the "question_snapshot" field.
func QuestionSnapshotLT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldQuestionSnapshot, v))
}

// QuestionSnapshotLTE applies the LTE predicate on the "question_snapshot" field.
func QuestionSnapshotLTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldQuestionSnapshot, v))
}

// QuestionSnapshotContains applies the Contains predicate on the "question_snapshot" field.
func QuestionSnapshotContains(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContains(FieldQuestionSnapshot, v))
}

// QuestionSnapshotHasPrefix applies the HasPrefix predicate on the "question_snapshot" field.
func QuestionSnapshotHasPrefix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasPrefix(FieldQuestionSnapshot, v))
}

// QuestionSnapshotHasSuffix applies the HasSuffix predicate on the "question_snapshot" field.
func QuestionSnapshotHasSuffix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasSuffix(FieldQuestionSnapshot, v))
}

// QuestionSnapshotEqualFold applies the EqualFold predicate on the "question_snapshot" field.
func QuestionSnapshotEqualFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEqualFold(FieldQuestionSnapshot, v))
}

// QuestionSnapshotContainsFold applies the ContainsFold predicate on the "question_snapshot" field.
func QuestionSnapshotContainsFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContainsFold(FieldQuestionSnapshot, v))
}

// TranscriptEQ applies the EQ predicate on the "transcript" field.
func TranscriptEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldTranscript, v))
}

// TranscriptNEQ applies the NEQ predicate on the "transcript" field.
func TranscriptNEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldTranscript, v))
}

// TranscriptIn applies the In predicate on the "transcript" field.
func TranscriptIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldTranscript, vs...))
}

// TranscriptNotIn applies the NotIn predicate on the "transcript" field.
func TranscriptNotIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldTranscript, vs...))
}

// TranscriptGT applies the GT predicate on the "transcript" field.
func TranscriptGT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldTranscript, v))
}

// TranscriptGTE applies the GTE predicate on the "transcript" field.
func TranscriptGTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldTranscript, v))
}

// TranscriptLT applies the LT predicate on the "transcript" field.
func TranscriptLT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldTranscript, v))
}

// TranscriptLTE applies the LTE predicate on the "transcript" field.
func TranscriptLTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldTranscript, v))
}

// TranscriptContains applies the Contains predicate on the "transcript" field.
func TranscriptContains(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContains(FieldTranscript, v))
}

// TranscriptHasPrefix applies the HasPrefix predicate on the "transcript" field.
func TranscriptHasPrefix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasPrefix(FieldTranscript, v))
}

// TranscriptHasSuffix applies the HasSuffix predicate on the "transcript" field.
func TranscriptHasSuffix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasSuffix(FieldTranscript, v))
}

// TranscriptEqualFold applies the EqualFold predicate on the "transcript" field.
func TranscriptEqualFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEqualFold(FieldTranscript, v))
}

// TranscriptContainsFold applies the ContainsFold predicate on the "transcript" field.
func TranscriptContainsFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContainsFold(FieldTranscript, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContainsFold(FieldCode, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldScore, v))
}

// IsFollowupEQ applies the EQ predicate on the "is_followup" field.
func IsFollowupEQ(v bool) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldIsFollowup, v))
}

// IsFollowupNEQ applies the NEQ predicate on the "is_followup" field.
func IsFollowupNEQ(v bool) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldIsFollowup, v))
}

// ParentTurnIDEQ applies the EQ predicate on the "parent_turn_id" field.
func ParentTurnIDEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldParentTurnID, v))
}

// ParentTurnIDNEQ applies the NEQ predicate on the "parent_turn_id" field.
func ParentTurnIDNEQ(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldParentTurnID, v))
}

// ParentTurnIDIn applies the In predicate on the "parent_turn_id" field.
func ParentTurnIDIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldParentTurnID, vs...))
}

// ParentTurnIDNotIn applies the NotIn predicate on the "parent_turn_id" field.
func ParentTurnIDNotIn(vs ...string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldParentTurnID, vs...))
}

// ParentTurnIDGT applies the GT predicate on the "parent_turn_id" field.
func ParentTurnIDGT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldParentTurnID, v))
}

// ParentTurnIDGTE applies the GTE predicate on the "parent_turn_id" field.
func ParentTurnIDGTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldParentTurnID, v))
}

// ParentTurnIDLT applies the LT predicate on the "parent_turn_id" field.
func ParentTurnIDLT(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldParentTurnID, v))
}

// ParentTurnIDLTE applies the LTE predicate on the "parent_turn_id" field.
func ParentTurnIDLTE(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldParentTurnID, v))
}

// ParentTurnIDContains applies the Contains predicate on the "parent_turn_id" field.
func ParentTurnIDContains(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContains(FieldParentTurnID, v))
}

// ParentTurnIDHasPrefix applies the HasPrefix predicate on the "parent_turn_id" field.
func ParentTurnIDHasPrefix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasPrefix(FieldParentTurnID, v))
}

// ParentTurnIDHasSuffix applies the HasSuffix predicate on the "parent_turn_id" field.
func ParentTurnIDHasSuffix(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldHasSuffix(FieldParentTurnID, v))
}

// ParentTurnIDEqualFold applies the EqualFold predicate on the "parent_turn_id" field.
func ParentTurnIDEqualFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEqualFold(FieldParentTurnID, v))
}

// ParentTurnIDContainsFold applies the ContainsFold predicate on the "parent_turn_id" field.
func ParentTurnIDContainsFold(v string) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldContainsFold(FieldParentTurnID, v))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldQuestionNumber, v))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewTurn) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewTurn) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewTurn) predicate.InterviewTurn {
	return predicate.InterviewTurn(sql.NotPredicates(p))
}
