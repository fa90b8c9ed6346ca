// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/VoidLight00/lemon-protocol/ent/testresult"
)

// TestResult is the model entity for the TestResult schema.
type TestResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Instrument identifier, e.g. attachment-ecr
	TestID string `json:"test_id,omitempty"`
	// Instrument display title at the time of the attempt
	TestTitle string `json:"test_title,omitempty"`
	// Matched band type, e.g. secure, caution, touch
	ResultType string `json:"result_type,omitempty"`
	// Band display title
	ResultTitle string `json:"result_title,omitempty"`
	// Band emoji
	ResultEmoji string `json:"result_emoji,omitempty"`
	// Band tips as shown to the user
	Tips []string `json:"tips,omitempty"`
	// Sum total; set for sum and total-banded instruments
	TotalScore int `json:"total_score,omitempty"`
	// Per-category sums; set for category instruments
	CategoryScores map[string]int `json:"category_scores,omitempty"`
	// Axis sums keyed by axis name; set for dimension instruments
	DimensionScores map[string]int `json:"dimension_scores,omitempty"`
	// Dominant category on total-banded hybrids
	MainIssue string `json:"main_issue,omitempty"`
	// Whether the result reached the remote service
	Synced bool `json:"synced,omitempty"`
	// UTC wall-clock time the result was saved
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testresult.FieldTips, testresult.FieldCategoryScores, testresult.FieldDimensionScores:
			values[i] = new([]byte)
		case testresult.FieldSynced:
			values[i] = new(sql.NullBool)
		case testresult.FieldID, testresult.FieldTotalScore:
			values[i] = new(sql.NullInt64)
		case testresult.FieldTestID, testresult.FieldTestTitle, testresult.FieldResultType, testresult.FieldResultTitle, testresult.FieldResultEmoji, testresult.FieldMainIssue:
			values[i] = new(sql.NullString)
		case testresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestResult fields.
func (_m *TestResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case testresult.FieldTestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value.Valid {
				_m.TestID = value.String
			}
		case testresult.FieldTestTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_title", values[i])
			} else if value.Valid {
				_m.TestTitle = value.String
			}
		case testresult.FieldResultType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_type", values[i])
			} else if value.Valid {
				_m.ResultType = value.String
			}
		case testresult.FieldResultTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_title", values[i])
			} else if value.Valid {
				_m.ResultTitle = value.String
			}
		case testresult.FieldResultEmoji:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_emoji", values[i])
			} else if value.Valid {
				_m.ResultEmoji = value.String
			}
		case testresult.FieldTips:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tips", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tips); err != nil {
					return fmt.Errorf("unmarshal field tips: %w", err)
				}
			}
		case testresult.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = int(value.Int64)
			}
		case testresult.FieldCategoryScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field category_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CategoryScores); err != nil {
					return fmt.Errorf("unmarshal field category_scores: %w", err)
				}
			}
		case testresult.FieldDimensionScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dimension_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DimensionScores); err != nil {
					return fmt.Errorf("unmarshal field dimension_scores: %w", err)
				}
			}
		case testresult.FieldMainIssue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field main_issue", values[i])
			} else if value.Valid {
				_m.MainIssue = value.String
			}
		case testresult.FieldSynced:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field synced", values[i])
			} else if value.Valid {
				_m.Synced = value.Bool
			}
		case testresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestResult.
// This includes values selected through modifiers, order, etc.
func (_m *TestResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestResult.
// Note that you need to call TestResult.Unwrap() before calling this method if this TestResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestResult) Update() *TestResultUpdateOne {
	return NewTestResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestResult) Unwrap() *TestResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestResult) String() string {
	var builder strings.Builder
	builder.WriteString("TestResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("test_id=")
	builder.WriteString(_m.TestID)
	builder.WriteString(", ")
	builder.WriteString("test_title=")
	builder.WriteString(_m.TestTitle)
	builder.WriteString(", ")
	builder.WriteString("result_type=")
	builder.WriteString(_m.ResultType)
	builder.WriteString(", ")
	builder.WriteString("result_title=")
	builder.WriteString(_m.ResultTitle)
	builder.WriteString(", ")
	builder.WriteString("result_emoji=")
	builder.WriteString(_m.ResultEmoji)
	builder.WriteString(", ")
	builder.WriteString("tips=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tips))
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("category_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryScores))
	builder.WriteString(", ")
	builder.WriteString("dimension_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.DimensionScores))
	builder.WriteString(", ")
	builder.WriteString("main_issue=")
	builder.WriteString(_m.MainIssue)
	builder.WriteString(", ")
	builder.WriteString("synced=")
	builder.WriteString(fmt.Sprintf("%v", _m.Synced))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TestResults is a parsable slice of TestResult.
type TestResults []*TestResult
