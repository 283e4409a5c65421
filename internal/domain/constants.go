package domain

import "time"

// Subprocess capture limits
const (
	// MaxCapturedOutput caps combined stdout/stderr captured from any spawned
	// documentation or help subprocess.
	MaxCapturedOutput = 1 << 20 // 1 MiB
)

// Prompt construction limits
const (
	// MaxDocPromptChars is the cap on documentation text inside the prompt.
	// Longer documentation is cut at this boundary and marked truncated.
	MaxDocPromptChars = 2000
)

// Help detection thresholds
const (
	// MinHelpOutputLen is the minimum output length for a help-flag attempt
	// to count as real help text.
	MinHelpOutputLen = 10
)

// LLM request parameters
const (
	DefaultHTTPTimeout = 60 * time.Second
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
)
