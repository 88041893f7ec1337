package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
	"github.com/docuvault/docstore-mcp-server/internal/store"
)

// ShapeResult wraps a backing-operation outcome into the tool-call result
// shape: a single text content block whose text is the JSON serialization of
// the payload, or the payload itself when it is already a string. Soft
// errors travel through here like any success; hard errors never do.
func ShapeResult(outcome store.Outcome) protocol.CallResult {
	payload := outcome.Payload()

	var text string
	if s, ok := payload.(string); ok {
		text = s
	} else {
		b, err := json.Marshal(payload)
		if err != nil {
			text = fmt.Sprintf("%v", payload)
		} else {
			text = string(b)
		}
	}

	return protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: text}}}
}
