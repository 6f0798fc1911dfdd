package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/sungkangmobil/showroom-assistant/pkg/providers/provider"
)

// FailureKind labels one attempt's failure for the fallback orchestrator.
type FailureKind string

const (
	KindAuthentication   FailureKind = "authentication"
	KindQuotaExceeded    FailureKind = "quota_exceeded"
	KindModelUnavailable FailureKind = "model_unavailable"
	KindSafetyBlocked    FailureKind = "safety_blocked"
	KindTimeout          FailureKind = "timeout"
	KindCancelled        FailureKind = "cancelled"
	KindUnknown          FailureKind = "unknown"
)

// String returns the underlying string value of the kind.
func (k FailureKind) String() string {
	return string(k)
}

// Substring triggers per kind, matched case-insensitively against the raw
// error text when no structured signal is available. The API does not
// guarantee structured error codes in every failure mode, so this fallback
// stays.
var (
	authTriggers   = []string{"api key", "authentication", "invalid", "unauthorized"}
	quotaTriggers  = []string{"quota", "rate limit", "too many", "resource exhausted"}
	modelTriggers  = []string{"not found", "404", "does not exist", "model not found"}
	safetyTriggers = []string{"blocked", "safety"}
)

// Classify maps a Generate error to a FailureKind. Structured signals win:
// context errors and HTTP status codes are checked first, and only then is
// the raw message matched against the substring tables. A nil error
// classifies as KindUnknown; callers should only pass real failures.
func Classify(err error) FailureKind {
	if err == nil {
		return KindUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindCancelled
	}

	var se *provider.StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case 401, 403:
			return KindAuthentication
		case 404:
			return KindModelUnavailable
		case 429:
			return KindQuotaExceeded
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, authTriggers):
		return KindAuthentication
	case containsAny(msg, quotaTriggers):
		return KindQuotaExceeded
	case containsAny(msg, modelTriggers):
		return KindModelUnavailable
	case containsAny(msg, safetyTriggers):
		return KindSafetyBlocked
	}

	return KindUnknown
}

func containsAny(msg string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(msg, t) {
			return true
		}
	}
	return false
}
