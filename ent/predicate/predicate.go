// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CVAnalysis is the predicate function for cvanalysis builders.
type CVAnalysis func(*sql.Selector)

// InterviewSession is the predicate function for interviewsession builders.
type InterviewSession func(*sql.Selector)

// InterviewTurn is the predicate function for interviewturn builders.
type InterviewTurn func(*sql.Selector)

// JobSpec is the predicate function for jobspec builders.
type JobSpec func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuestionHistory is the predicate function for questionhistory builders.
type QuestionHistory func(*sql.Selector)

// ReadinessSnapshot is the predicate function for readinesssnapshot builders.
type ReadinessSnapshot func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
