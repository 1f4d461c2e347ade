// Code generated by ent, DO NOT EDIT.

package jobspec

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the jobspec type in the database.
	Label = "job_spec"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJdHash holds the string denoting the jd_hash field in the database.
	FieldJdHash = "jd_hash"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldRoleProfile holds the string denoting the role_profile field in the database.
	FieldRoleProfile = "role_profile"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the jobspec in the database.
	Table = "job_specs"
)

// Columns holds all SQL columns for jobspec fields.
var Columns = []string{
	FieldID,
	FieldJdHash,
	FieldTitle,
	FieldRawText,
	FieldRoleProfile,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// JdHashValidator is a validator for the "jd_hash" field. It is called by the builders before save.
	JdHashValidator func(string) error
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	RawTextValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the JobSpec queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJdHash orders the results by the jd_hash field.
func ByJdHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJdHash, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
