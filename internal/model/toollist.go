package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeTools serializes an ordered tool list to the single-column text form.
// A nil or empty list encodes to "[]" so the stored column is never blank.
func EncodeTools(tools []Tool) (string, error) {
	if len(tools) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(tools)
	if err != nil {
		return "", fmt.Errorf("failed to encode tool list: %w", err)
	}
	return string(data), nil
}

// DecodeTools parses the stored text form back into an ordered tool list.
// Empty text and JSON null decode to an empty list; anything else that is
// not a well-formed tool array fails with ErrMalformedToolData. A failed
// decode never returns a partial list.
func DecodeTools(s string) ([]Tool, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "null" {
		return []Tool{}, nil
	}

	var tools []Tool
	if err := json.Unmarshal([]byte(trimmed), &tools); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToolData, err)
	}
	if tools == nil {
		tools = []Tool{}
	}
	return tools, nil
}
