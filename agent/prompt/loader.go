package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/system.txt
var systemRaw string

// System returns the chatbot system prompt. The embed is compile-time and
// trimming is cheap, so this is safe to call anywhere.
func System() string {
	return strings.TrimSpace(systemRaw)
}
