// Code generated by ent, DO NOT EDIT.

package testresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/VoidLight00/lemon-protocol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldID, id))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTestID, v))
}

// TestTitle applies equality check predicate on the "test_title" field. It's identical to TestTitleEQ.
func TestTitle(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTestTitle, v))
}

// ResultType applies equality check predicate on the "result_type" field. It's identical to ResultTypeEQ.
func ResultType(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldResultType, v))
}

// ResultTitle applies equality check predicate on the "result_title" field. It's identical to ResultTitleEQ.
func ResultTitle(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldResultTitle, v))
}

// ResultEmoji applies equality check predicate on the "result_emoji" field. It's identical to ResultEmojiEQ.
func ResultEmoji(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldResultEmoji, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTotalScore, v))
}

// MainIssue applies equality check predicate on the "main_issue" field. It's identical to MainIssueEQ.
func MainIssue(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldMainIssue, v))
}

// Synced applies equality check predicate on the "synced" field. It's identical to SyncedEQ.
func Synced(v bool) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldSynced, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldCreatedAt, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldTestID, v))
}

// TestIDContains applies the Contains predicate on the "test_id" field.
func TestIDContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldTestID, v))
}

// TestIDHasPrefix applies the HasPrefix predicate on the "test_id" field.
func TestIDHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldTestID, v))
}

// TestIDHasSuffix applies the HasSuffix predicate on the "test_id" field.
func TestIDHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldTestID, v))
}

// TestIDEqualFold applies the EqualFold predicate on the "test_id" field.
func TestIDEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldTestID, v))
}

// TestIDContainsFold applies the ContainsFold predicate on the "test_id" field.
func TestIDContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldTestID, v))
}

// TestTitleEQ applies the EQ predicate on the "test_title" field.
func TestTitleEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTestTitle, v))
}

// TestTitleNEQ applies the NEQ predicate on the "test_title" field.
func TestTitleNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldTestTitle, v))
}

// TestTitleIn applies the In predicate on the "test_title" field.
func TestTitleIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldTestTitle, vs...))
}

// TestTitleNotIn applies the NotIn predicate on the "test_title" field.
func TestTitleNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldTestTitle, vs...))
}

// TestTitleGT applies the GT predicate on the "test_title" field.
func TestTitleGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldTestTitle, v))
}

// TestTitleGTE applies the GTE predicate on the "test_title" field.
func TestTitleGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldTestTitle, v))
}

// TestTitleLT applies the LT predicate on the "test_title" field.
func TestTitleLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldTestTitle, v))
}

// TestTitleLTE applies the LTE predicate on the "test_title" field.
func TestTitleLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldTestTitle, v))
}

// TestTitleContains applies the Contains predicate on the "test_title" field.
func TestTitleContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldTestTitle, v))
}

// TestTitleHasPrefix applies the HasPrefix predicate on the "test_title" field.
func TestTitleHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldTestTitle, v))
}

// TestTitleHasSuffix applies the HasSuffix predicate on the "test_title" field.
func TestTitleHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldTestTitle, v))
}

// TestTitleEqualFold applies the EqualFold predicate on the "test_title" field.
func TestTitleEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldTestTitle, v))
}

// TestTitleContainsFold applies the ContainsFold predicate on the "test_title" field.
func TestTitleContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldTestTitle, v))
}

// ResultTypeEQ applies the EQ predicate on the "result_type" field.
func ResultTypeEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldResultType, v))
}

// ResultTypeNEQ applies the NEQ predicate on the "result_type" field.
func ResultTypeNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldResultType, v))
}

// ResultTypeIn applies the In predicate on the "result_type" field.
func ResultTypeIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldResultType, vs...))
}

// ResultTypeNotIn applies the NotIn predicate on the "result_type" field.
func ResultTypeNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldResultType, vs...))
}

// ResultTypeGT applies the GT predicate on the "result_type" field.
func ResultTypeGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldResultType, v))
}

// ResultTypeGTE applies the GTE predicate on the "result_type" field.
func ResultTypeGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldResultType, v))
}

// ResultTypeLT applies the LT predicate on the "result_type" field.
func ResultTypeLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldResultType, v))
}

// ResultTypeLTE applies the LTE predicate on the "result_type" field.
func ResultTypeLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldResultType, v))
}

// ResultTypeContains applies the Contains predicate on the "result_type" field.
func ResultTypeContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldResultType, v))
}

// ResultTypeHasPrefix applies the HasPrefix predicate on the "result_type" field.
func ResultTypeHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldResultType, v))
}

// ResultTypeHasSuffix applies the HasSuffix predicate on the "result_type" field.
func ResultTypeHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldResultType, v))
}

// ResultTypeEqualFold applies the EqualFold predicate on the "result_type" field.
func ResultTypeEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldResultType, v))
}

// ResultTypeContainsFold applies the ContainsFold predicate on the "result_type" field.
func ResultTypeContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldResultType, v))
}

// ResultTitleEQ applies the EQ predicate on the "result_title" field.
func ResultTitleEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldResultTitle, v))
}

// ResultTitleNEQ applies the NEQ predicate on the "result_title" field.
func ResultTitleNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldResultTitle, v))
}

// ResultTitleIn applies the In predicate on the "result_title" field.
func ResultTitleIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldResultTitle, vs...))
}

// ResultTitleNotIn applies the NotIn predicate on the "result_title" field.
func ResultTitleNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldResultTitle, vs...))
}

// ResultTitleGT applies the GT predicate on the "result_title" field.
func ResultTitleGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldResultTitle, v))
}

// ResultTitleGTE applies the GTE predicate on the "result_title" field.
func ResultTitleGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldResultTitle, v))
}

// ResultTitleLT applies the LT predicate on the "result_title" field.
func ResultTitleLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldResultTitle, v))
}

// ResultTitleLTE applies the LTE predicate on the "result_title" field.
func ResultTitleLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldResultTitle, v))
}

// ResultTitleContains applies the Contains predicate on the "result_title" field.
func ResultTitleContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldResultTitle, v))
}

// ResultTitleHasPrefix applies the HasPrefix predicate on the "result_title" field.
func ResultTitleHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldResultTitle, v))
}

// ResultTitleHasSuffix applies the HasSuffix predicate on the "result_title" field.
func ResultTitleHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldResultTitle, v))
}

// ResultTitleEqualFold applies the EqualFold predicate on the "result_title" field.
func ResultTitleEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldResultTitle, v))
}

// ResultTitleContainsFold applies the ContainsFold predicate on the "result_title" field.
func ResultTitleContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldResultTitle, v))
}

// ResultEmojiEQ applies the EQ predicate on the "result_emoji" field.
func ResultEmojiEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldResultEmoji, v))
}

// ResultEmojiNEQ applies the NEQ predicate on the "result_emoji" field.
func ResultEmojiNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldResultEmoji, v))
}

// ResultEmojiIn applies the In predicate on the "result_emoji" field.
func ResultEmojiIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldResultEmoji, vs...))
}

// ResultEmojiNotIn applies the NotIn predicate on the "result_emoji" field.
func ResultEmojiNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldResultEmoji, vs...))
}

// ResultEmojiGT applies the GT predicate on the "result_emoji" field.
func ResultEmojiGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldResultEmoji, v))
}

// ResultEmojiGTE applies the GTE predicate on the "result_emoji" field.
func ResultEmojiGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldResultEmoji, v))
}

// ResultEmojiLT applies the LT predicate on the "result_emoji" field.
func ResultEmojiLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldResultEmoji, v))
}

// ResultEmojiLTE applies the LTE predicate on the "result_emoji" field.
func ResultEmojiLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldResultEmoji, v))
}

// ResultEmojiContains applies the Contains predicate on the "result_emoji" field.
func ResultEmojiContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldResultEmoji, v))
}

// ResultEmojiHasPrefix applies the HasPrefix predicate on the "result_emoji" field.
func ResultEmojiHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldResultEmoji, v))
}

// ResultEmojiHasSuffix applies the HasSuffix predicate on the "result_emoji" field.
func ResultEmojiHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldResultEmoji, v))
}

// ResultEmojiEqualFold applies the EqualFold predicate on the "result_emoji" field.
func ResultEmojiEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldResultEmoji, v))
}

// ResultEmojiContainsFold applies the ContainsFold predicate on the "result_emoji" field.
func ResultEmojiContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldResultEmoji, v))
}

// TipsIsNil applies the IsNil predicate on the "tips" field.
func TipsIsNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldIsNull(FieldTips))
}

// TipsNotNil applies the NotNil predicate on the "tips" field.
func TipsNotNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldNotNull(FieldTips))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...int) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v int) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldTotalScore, v))
}

// TotalScoreIsNil applies the IsNil predicate on the "total_score" field.
func TotalScoreIsNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldIsNull(FieldTotalScore))
}

// TotalScoreNotNil applies the NotNil predicate on the "total_score" field.
func TotalScoreNotNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldNotNull(FieldTotalScore))
}

// CategoryScoresIsNil applies the IsNil predicate on the "category_scores" field.
func CategoryScoresIsNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldIsNull(FieldCategoryScores))
}

// CategoryScoresNotNil applies the NotNil predicate on the "category_scores" field.
func CategoryScoresNotNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldNotNull(FieldCategoryScores))
}

// DimensionScoresIsNil applies the IsNil predicate on the "dimension_scores" field.
func DimensionScoresIsNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldIsNull(FieldDimensionScores))
}

// DimensionScoresNotNil applies the NotNil predicate on the "dimension_scores" field.
func DimensionScoresNotNil() predicate.TestResult {
	return predicate.TestResult(sql.FieldNotNull(FieldDimensionScores))
}

// MainIssueEQ applies the EQ predicate on the "main_issue" field.
func MainIssueEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldMainIssue, v))
}

// MainIssueNEQ applies the NEQ predicate on the "main_issue" field.
func MainIssueNEQ(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldMainIssue, v))
}

// MainIssueIn applies the In predicate on the "main_issue" field.
func MainIssueIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldMainIssue, vs...))
}

// MainIssueNotIn applies the NotIn predicate on the "main_issue" field.
func MainIssueNotIn(vs ...string) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldMainIssue, vs...))
}

// MainIssueGT applies the GT predicate on the "main_issue" field.
func MainIssueGT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldMainIssue, v))
}

// MainIssueGTE applies the GTE predicate on the "main_issue" field.
func MainIssueGTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldMainIssue, v))
}

// MainIssueLT applies the LT predicate on the "main_issue" field.
func MainIssueLT(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldMainIssue, v))
}

// MainIssueLTE applies the LTE predicate on the "main_issue" field.
func MainIssueLTE(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldMainIssue, v))
}

// MainIssueContains applies the Contains predicate on the "main_issue" field.
func MainIssueContains(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContains(FieldMainIssue, v))
}

// MainIssueHasPrefix applies the HasPrefix predicate on the "main_issue" field.
func MainIssueHasPrefix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasPrefix(FieldMainIssue, v))
}

// MainIssueHasSuffix applies the HasSuffix predicate on the "main_issue" field.
func MainIssueHasSuffix(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldHasSuffix(FieldMainIssue, v))
}

// MainIssueEqualFold applies the EqualFold predicate on the "main_issue" field.
func MainIssueEqualFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldEqualFold(FieldMainIssue, v))
}

// MainIssueContainsFold applies the ContainsFold predicate on the "main_issue" field.
func MainIssueContainsFold(v string) predicate.TestResult {
	return predicate.TestResult(sql.FieldContainsFold(FieldMainIssue, v))
}

// SyncedEQ applies the EQ predicate on the "synced" field.
func SyncedEQ(v bool) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldSynced, v))
}

// SyncedNEQ applies the NEQ predicate on the "synced" field.
func SyncedNEQ(v bool) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldSynced, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestResult {
	return predicate.TestResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestResult) predicate.TestResult {
	return predicate.TestResult(sql.NotPredicates(p))
}
