// Package usage accumulates token usage reported by the generation API.
package usage

import "sync"

// TokenCount holds prompt and response token counts for a single API call.
type TokenCount struct {
	PromptTokens   int
	ResponseTokens int
}

// Total returns the sum of prompt and response tokens.
func (tc TokenCount) Total() int {
	return tc.PromptTokens + tc.ResponseTokens
}

// Tracker accumulates token usage across API calls. It is safe for
// concurrent use. The zero value is ready to use.
type Tracker struct {
	mu    sync.Mutex
	total TokenCount
	last  TokenCount
	calls int
}

// Add records the token count of one call.
func (t *Tracker) Add(tc TokenCount) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total.PromptTokens += tc.PromptTokens
	t.total.ResponseTokens += tc.ResponseTokens
	t.last = tc
	t.calls++
}

// Total returns the aggregate token count across all recorded calls.
func (t *Tracker) Total() TokenCount {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.total
}

// Last returns the token count of the most recent call.
// The bool is false when nothing has been recorded yet.
func (t *Tracker) Last() (TokenCount, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.calls == 0 {
		return TokenCount{}, false
	}

	return t.last, true
}

// Calls returns the number of recorded calls.
func (t *Tracker) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.calls
}
