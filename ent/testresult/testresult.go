// Code generated by ent, DO NOT EDIT.

package testresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the testresult type in the database.
	Label = "test_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldTestTitle holds the string denoting the test_title field in the database.
	FieldTestTitle = "test_title"
	// FieldResultType holds the string denoting the result_type field in the database.
	FieldResultType = "result_type"
	// FieldResultTitle holds the string denoting the result_title field in the database.
	FieldResultTitle = "result_title"
	// FieldResultEmoji holds the string denoting the result_emoji field in the database.
	FieldResultEmoji = "result_emoji"
	// FieldTips holds the string denoting the tips field in the database.
	FieldTips = "tips"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldCategoryScores holds the string denoting the category_scores field in the database.
	FieldCategoryScores = "category_scores"
	// FieldDimensionScores holds the string denoting the dimension_scores field in the database.
	FieldDimensionScores = "dimension_scores"
	// FieldMainIssue holds the string denoting the main_issue field in the database.
	FieldMainIssue = "main_issue"
	// FieldSynced holds the string denoting the synced field in the database.
	FieldSynced = "synced"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the testresult in the database.
	Table = "test_results"
)

// Columns holds all SQL columns for testresult fields.
var Columns = []string{
	FieldID,
	FieldTestID,
	FieldTestTitle,
	FieldResultType,
	FieldResultTitle,
	FieldResultEmoji,
	FieldTips,
	FieldTotalScore,
	FieldCategoryScores,
	FieldDimensionScores,
	FieldMainIssue,
	FieldSynced,
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
	// TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	TestIDValidator func(string) error
	// ResultTypeValidator is a validator for the "result_type" field. It is called by the builders before save.
	ResultTypeValidator func(string) error
	// DefaultMainIssue holds the default value on creation for the "main_issue" field.
	DefaultMainIssue string
	// DefaultSynced holds the default value on creation for the "synced" field.
	DefaultSynced bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TestResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// ByTestTitle orders the results by the test_title field.
func ByTestTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestTitle, opts...).ToFunc()
}

// ByResultType orders the results by the result_type field.
func ByResultType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultType, opts...).ToFunc()
}

// ByResultTitle orders the results by the result_title field.
func ByResultTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultTitle, opts...).ToFunc()
}

// ByResultEmoji orders the results by the result_emoji field.
func ByResultEmoji(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultEmoji, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByMainIssue orders the results by the main_issue field.
func ByMainIssue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMainIssue, opts...).ToFunc()
}

// BySynced orders the results by the synced field.
func BySynced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynced, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
