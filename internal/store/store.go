package store

import (
	"context"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
)

// Tool names understood by the store. The dispatcher routes by these; the
// tool catalog declares them.
const (
	ToolRecentDocuments      = "get_recent_documents"
	ToolFindDocumentByID     = "find_document_by_id"
	ToolCustomerProductCount = "get_customer_product_count"
	ToolCustomerOrderTotal   = "get_customer_order_total"
)

// Executor is the backing-operation contract consumed by the dispatch core.
// A returned error is a transport/store fault and becomes a hard -32603
// envelope; an Outcome is always rendered as a success envelope, soft errors
// included.
type Executor interface {
	Execute(ctx context.Context, tool string, args protocol.Arguments) (Outcome, error)
}

// Outcome is the two-variant result of a backing operation: either a success
// payload or a soft-error payload (no data / failed local check). The
// variants are distinct so the response shaper cannot promote a soft error
// into the hard-error shape or vice versa.
type Outcome struct {
	value any
	soft  bool
}

// OK wraps a success payload.
func OK(v any) Outcome {
	return Outcome{value: v}
}

// Soft wraps a soft-error payload. It still travels as an ordinary success
// envelope on the wire.
func Soft(v any) Outcome {
	return Outcome{value: v, soft: true}
}

// Payload returns the wrapped value.
func (o Outcome) Payload() any {
	return o.value
}

// IsSoft reports whether the outcome is the soft-error variant.
func (o Outcome) IsSoft() bool {
	return o.soft
}

// SoftError is the payload shape for an input constraint that failed a local
// check inside a backing operation.
type SoftError struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}
