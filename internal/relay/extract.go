package relay

import (
	"encoding/json"
	"fmt"
)

// maxDebugLen caps the payload dump attached to a NoTextError.
const maxDebugLen = 500

// extractor pulls generated text out of one known Cohere response shape.
type extractor func(payload Payload) (string, bool)

// extractors are tried in order. The block format is current, the flat text field is legacy.
var extractors = []extractor{
	fromContentBlocks,
	fromTextField,
}

// ExtractText returns the generated text from a Cohere payload, or a *NoTextError
// when none of the known shapes yields a non-empty string.
func ExtractText(payload Payload) (string, error) {
	for _, extract := range extractors {
		if text, ok := extract(payload); ok {
			return text, nil
		}
	}
	return "", &NoTextError{Debug: debugDump(payload)}
}

// fromContentBlocks reads { message: { content: [ { type: "text", text } ] } }.
func fromContentBlocks(payload Payload) (string, bool) {
	message, ok := payload["message"].(map[string]any)
	if !ok {
		return "", false
	}
	blocks, ok := message["content"].([]any)
	if !ok {
		return "", false
	}
	for _, b := range blocks {
		block, ok := b.(map[string]any)
		if !ok || block["type"] != "text" {
			continue
		}
		text, ok := block["text"].(string)
		if ok && text != "" {
			return text, true
		}
	}
	return "", false
}

// fromTextField reads { text }.
func fromTextField(payload Payload) (string, bool) {
	text, ok := payload["text"].(string)
	return text, ok && text != ""
}

func debugDump(payload Payload) string {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%v", payload)
	}
	return truncate(string(raw), maxDebugLen)
}

// truncate cuts s to at most n characters without splitting a rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
