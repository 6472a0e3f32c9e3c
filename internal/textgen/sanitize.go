package textgen

import (
	"encoding/json"
	"strings"
)

// minUsableLength rejects responses too short to be a real visualization.
const minUsableLength = 40

// Known phrases of deprecation/migration notices some free APIs return with
// a 200 status. Substring matching is fragile but mirrors what the notices
// actually say.
var apiNoticeMarkers = []string{
	"important notice",
	"deprecated",
	"migrate to our new service",
	"enter.pollinations.ai",
}

// NormalizeResponse turns a raw provider body into usable text, or "" when
// the body is empty, notice-like, too short, or JSON without a recognizable
// text field.
func NormalizeResponse(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		if extracted := extractTextFromJSON(text); extracted != "" {
			text = strings.TrimSpace(extracted)
		}
	}

	if looksLikeAPINotice(text) {
		return ""
	}
	if len([]rune(text)) < minUsableLength {
		return ""
	}
	return text
}

// extractTextFromJSON probes the response shapes free text APIs use: a
// top-level string field, an OpenAI-style choices array, or a bare array of
// strings.
func extractTextFromJSON(raw string) string {
	var root any
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		return ""
	}

	switch value := root.(type) {
	case map[string]any:
		for _, key := range []string{"text", "response", "output", "content", "message", "result"} {
			if text, ok := value[key].(string); ok {
				return text
			}
		}
		if choices, ok := value["choices"].([]any); ok && len(choices) > 0 {
			if first, ok := choices[0].(map[string]any); ok {
				if text, ok := first["text"].(string); ok {
					return text
				}
				if message, ok := first["message"].(map[string]any); ok {
					if content, ok := message["content"].(string); ok {
						return content
					}
				}
			}
		}
	case []any:
		if len(value) > 0 {
			if text, ok := value[0].(string); ok {
				return text
			}
		}
	}
	return ""
}

func looksLikeAPINotice(text string) bool {
	lowered := strings.ToLower(text)
	for _, marker := range apiNoticeMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
