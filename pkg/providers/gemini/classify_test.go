package gemini_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sungkangmobil/showroom-assistant/pkg/providers/gemini"
	"github.com/sungkangmobil/showroom-assistant/pkg/providers/provider"
)

func TestClassify_Substrings(t *testing.T) {
	tests := []struct {
		msg  string
		want gemini.FailureKind
	}{
		{"Invalid API key provided", gemini.KindAuthentication},
		{"request had invalid authentication credentials", gemini.KindAuthentication},
		{"Unauthorized", gemini.KindAuthentication},
		{"Quota exceeded for requests", gemini.KindQuotaExceeded},
		{"Rate limit reached, too many requests", gemini.KindQuotaExceeded},
		{"RESOURCE EXHAUSTED", gemini.KindQuotaExceeded},
		{"model gemini-9.9 is not found", gemini.KindModelUnavailable},
		{"requested entity does not exist", gemini.KindModelUnavailable},
		{"response was blocked", gemini.KindSafetyBlocked},
		{"safety settings rejected the candidate", gemini.KindSafetyBlocked},
		{"connection reset by peer", gemini.KindUnknown},
		{"", gemini.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, gemini.Classify(errors.New(tt.msg)))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, gemini.KindQuotaExceeded, gemini.Classify(errors.New("QUOTA exceeded")))
	assert.Equal(t, gemini.KindAuthentication, gemini.Classify(errors.New("INVALID api KEY")))
}

func TestClassify_StatusCodesWinOverText(t *testing.T) {
	tests := []struct {
		code int
		want gemini.FailureKind
	}{
		{401, gemini.KindAuthentication},
		{403, gemini.KindAuthentication},
		{404, gemini.KindModelUnavailable},
		{429, gemini.KindQuotaExceeded},
	}

	for _, tt := range tests {
		// The body carries no matching substring; the status code alone
		// must decide.
		err := fmt.Errorf("gemini: %w", &provider.StatusError{Code: tt.code, Body: "opaque backend text"})
		assert.Equal(t, tt.want, gemini.Classify(err), "code %d", tt.code)
	}
}

func TestClassify_UnmappedStatusFallsBackToText(t *testing.T) {
	err := fmt.Errorf("gemini: %w", &provider.StatusError{Code: 400, Body: "API key not valid"})
	assert.Equal(t, gemini.KindAuthentication, gemini.Classify(err))

	err = fmt.Errorf("gemini: %w", &provider.StatusError{Code: 500, Body: "internal"})
	assert.Equal(t, gemini.KindUnknown, gemini.Classify(err))
}

func TestClassify_ContextErrors(t *testing.T) {
	assert.Equal(t, gemini.KindTimeout, gemini.Classify(fmt.Errorf("do request: %w", context.DeadlineExceeded)))
	assert.Equal(t, gemini.KindCancelled, gemini.Classify(fmt.Errorf("do request: %w", context.Canceled)))
}

func TestClassify_Nil(t *testing.T) {
	assert.Equal(t, gemini.KindUnknown, gemini.Classify(nil))
}
