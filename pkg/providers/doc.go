// Package providers contains the client layer for external generation APIs.
//
// Sub-packages:
//   - [github.com/sungkangmobil/showroom-assistant/pkg/providers/provider] — shared HTTP client base (auth, JSON helpers, typed status errors)
//   - [github.com/sungkangmobil/showroom-assistant/pkg/providers/usage] — token usage accounting
//   - [github.com/sungkangmobil/showroom-assistant/pkg/providers/gemini] — Google Gemini generateContent adapter and failure classification
package providers
