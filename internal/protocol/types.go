package protocol

import "encoding/json"

// Request represents a minimal JSON-RPC 2.0 request. The jsonrpc tag and the
// id are pass-through values: neither is validated or interpreted. Params
// stays raw so a malformed payload on a notification cannot fail the decode.
type Request struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response models a JSON-RPC 2.0 response. Exactly one of Result or Error is
// set; the ID echoes the request's id verbatim.
type Response struct {
	JSONRPC string         `json:"jsonrpc,omitempty"`
	ID      any            `json:"id"`
	Result  any            `json:"result,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

// ResponseError holds JSON-RPC error data.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON-RPC error codes used on the wire. The code space is closed: dispatch
// failures map onto these and nothing else.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// NewResult builds a success response echoing id.
func NewResult(id any, result any) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Result: result}
}

// NewMethodNotFound builds the -32601 response with the offending method, in
// its original casing, carried in data.
func NewMethodNotFound(id any, method string) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Error: &ResponseError{Code: CodeMethodNotFound, Message: "method not found", Data: method}}
}

// NewInternalError builds the -32603 catch-all with a short diagnostic in
// data. Callers pass the original operation's message text only.
func NewInternalError(id any, detail string) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Error: &ResponseError{Code: CodeInternalError, Message: "internal error", Data: detail}}
}

// ToolDescriptor describes a tool available from the MCP server.
type ToolDescriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema *JSONSchema `json:"inputSchema,omitempty"`
}

// JSONSchema is a minimal subset to describe tool input shapes.
type JSONSchema struct {
	Type        string                `json:"type,omitempty"`
	Properties  map[string]JSONSchema `json:"properties,omitempty"`
	Required    []string              `json:"required,omitempty"`
	Description string                `json:"description,omitempty"`
}

// ListResult is the payload for tools/list.
type ListResult struct {
	Tools []ToolDescriptor `json:"tools"`
}

// CallParams represents parameters for tools/call. Arguments is the raw
// mapping handed to the coercer; its values are whatever encoding/json
// produced.
type CallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ContentPart is a single piece of tool output. Text is always a string,
// never a structured value; clients depend on that.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResult is the payload for a successful tool invocation.
type CallResult struct {
	Content []ContentPart `json:"content"`
}
