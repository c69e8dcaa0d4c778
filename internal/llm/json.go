package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CleanMarkdownWrapper strips triple-backtick code-fence decoration from
// model output. Providers frequently wrap JSON in ```json ... ``` fences
// despite instructions not to; the fence (with an optional language tag)
// must be removed before strict parsing.
func CleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if idx := strings.Index(content, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json") if one is present.
		tag := strings.TrimSpace(content[:idx])
		if tag == "" || !strings.ContainsAny(tag, "{}[]") {
			content = content[idx+1:]
		}
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}

// DecodeObject parses model output into v: fence-strip, then strict JSON
// parse. Callers own the fallback policy; this helper never substitutes
// values on error.
func DecodeObject(content string, v any) error {
	cleaned := CleanMarkdownWrapper(content)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}
