// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/VoidLight00/lemon-protocol/ent/chatmessage"
	"github.com/VoidLight00/lemon-protocol/ent/llmrequestevent"
	"github.com/VoidLight00/lemon-protocol/ent/schema"
	"github.com/VoidLight00/lemon-protocol/ent/testresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageMixin := schema.ChatMessage{}.Mixin()
	chatmessageMixinFields0 := chatmessageMixin[0].Fields()
	_ = chatmessageMixinFields0
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescTimestamp is the schema descriptor for timestamp field.
	chatmessageDescTimestamp := chatmessageMixinFields0[1].Descriptor()
	// chatmessage.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatmessage.DefaultTimestamp = chatmessageDescTimestamp.Default.(func() time.Time)
	// chatmessageDescSessionID is the schema descriptor for session_id field.
	chatmessageDescSessionID := chatmessageFields[0].Descriptor()
	// chatmessage.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chatmessage.SessionIDValidator = chatmessageDescSessionID.Validators[0].(func(string) error)
	// chatmessageDescRole is the schema descriptor for role field.
	chatmessageDescRole := chatmessageFields[1].Descriptor()
	// chatmessage.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	chatmessage.RoleValidator = chatmessageDescRole.Validators[0].(func(string) error)
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
	testresultFields := schema.TestResult{}.Fields()
	_ = testresultFields
	// testresultDescTestID is the schema descriptor for test_id field.
	testresultDescTestID := testresultFields[0].Descriptor()
	// testresult.TestIDValidator is a validator for the "test_id" field. It is called by the builders before save.
	testresult.TestIDValidator = testresultDescTestID.Validators[0].(func(string) error)
	// testresultDescResultType is the schema descriptor for result_type field.
	testresultDescResultType := testresultFields[2].Descriptor()
	// testresult.ResultTypeValidator is a validator for the "result_type" field. It is called by the builders before save.
	testresult.ResultTypeValidator = testresultDescResultType.Validators[0].(func(string) error)
	// testresultDescMainIssue is the schema descriptor for main_issue field.
	testresultDescMainIssue := testresultFields[9].Descriptor()
	// testresult.DefaultMainIssue holds the default value on creation for the main_issue field.
	testresult.DefaultMainIssue = testresultDescMainIssue.Default.(string)
	// testresultDescSynced is the schema descriptor for synced field.
	testresultDescSynced := testresultFields[10].Descriptor()
	// testresult.DefaultSynced holds the default value on creation for the synced field.
	testresult.DefaultSynced = testresultDescSynced.Default.(bool)
	// testresultDescCreatedAt is the schema descriptor for created_at field.
	testresultDescCreatedAt := testresultFields[11].Descriptor()
	// testresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	testresult.DefaultCreatedAt = testresultDescCreatedAt.Default.(func() time.Time)
}
