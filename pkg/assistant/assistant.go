// Package assistant orchestrates grounded responses across an ordered list
// of candidate generation models. One user turn produces one prompt, then
// sequential attempts over the candidate list; the first success wins and
// exhausting the list yields a composed failure report instead of an error.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sungkangmobil/showroom-assistant/pkg/catalog"
	"github.com/sungkangmobil/showroom-assistant/pkg/chats"
	"github.com/sungkangmobil/showroom-assistant/pkg/prompt"
	"github.com/sungkangmobil/showroom-assistant/pkg/providers/gemini"
)

// Generator performs a single generation attempt against one model.
// *gemini.Adapter implements it; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, model, promptText string) (string, error)
}

// Classifier maps an attempt error to a failure kind.
type Classifier func(error) gemini.FailureKind

// Attempt describes the outcome of a single model attempt. It is delivered
// to the Observer hook, once per attempt, in attempt order.
type Attempt struct {
	Model   string
	Kind    gemini.FailureKind // Empty on success.
	Err     error              // Nil on success.
	Latency time.Duration
}

// Options holds optional orchestrator settings.
type Options struct {
	AttemptTimeout time.Duration // Per-attempt deadline; zero means none.
	Classify       Classifier    // Failure classifier; nil uses gemini.Classify.
	Observer       func(Attempt) // Per-attempt hook; nil disables observation.
}

// Assistant answers user turns grounded in a catalog snapshot, falling back
// across candidate models in strict configured order. It holds no mutable
// state across requests and is safe for sequential reuse.
type Assistant struct {
	gen            Generator
	models         []string
	snapshot       catalog.Snapshot
	attemptTimeout time.Duration
	classify       Classifier
	observer       func(Attempt)
}

// New creates an Assistant. The model list is copied and must not be
// empty; it is never reordered afterwards.
func New(gen Generator, models []string, snap catalog.Snapshot, opts Options) (*Assistant, error) {
	if gen == nil {
		return nil, fmt.Errorf("assistant: generator is required")
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("assistant: at least one candidate model is required")
	}

	classify := opts.Classify
	if classify == nil {
		classify = gemini.Classify
	}

	return &Assistant{
		gen:            gen,
		models:         append([]string(nil), models...),
		snapshot:       snap,
		attemptTimeout: opts.AttemptTimeout,
		classify:       classify,
		observer:       opts.Observer,
	}, nil
}

// Catalog returns the snapshot the assistant grounds its answers in.
func (a *Assistant) Catalog() catalog.Snapshot {
	return a.snapshot
}

// Models returns the candidate list in precedence order.
func (a *Assistant) Models() []string {
	return append([]string(nil), a.models...)
}

// Respond answers one user turn. It composes the prompt once, then tries
// each candidate model in order until one succeeds. The result is always a
// displayable string: the first successful text (which may be empty), a
// cancellation notice when ctx ends before a success, or the exhaustion
// report when every candidate fails.
func (a *Assistant) Respond(ctx context.Context, userMessage string, history chats.History) string {
	promptText := prompt.Compose(userMessage, a.snapshot, history)

	for _, model := range a.models {
		if ctx.Err() != nil {
			return a.cancellationNotice()
		}

		text, err := a.attempt(ctx, model, promptText)
		if err == nil {
			return text
		}

		kind := a.classify(err)
		if kind == gemini.KindCancelled || ctx.Err() != nil {
			// The caller gave up; skip the remaining candidates.
			return a.cancellationNotice()
		}
	}

	return a.exhaustionReport()
}

// attempt runs a single model attempt under the per-attempt deadline and
// reports its outcome to the observer.
func (a *Assistant) attempt(ctx context.Context, model, promptText string) (string, error) {
	attemptCtx := ctx
	cancel := func() {}
	if a.attemptTimeout > 0 {
		attemptCtx, cancel = context.WithTimeout(ctx, a.attemptTimeout)
	}
	defer cancel()

	start := time.Now()
	text, err := a.gen.Generate(attemptCtx, model, promptText)
	latency := time.Since(start)

	if err != nil {
		a.observe(Attempt{Model: model, Kind: a.classify(err), Err: err, Latency: latency})
		return "", err
	}

	a.observe(Attempt{Model: model, Latency: latency})
	return text, nil
}

func (a *Assistant) observe(att Attempt) {
	if a.observer != nil {
		a.observer(att)
	}
}

// cancellationNotice is returned when the caller's context ends before any
// candidate succeeds. It is deliberately distinct from the exhaustion
// report: the backends were not all ruled out.
func (a *Assistant) cancellationNotice() string {
	return fmt.Sprintf(
		"Permintaan dibatalkan sebelum selesai diproses. Silakan coba lagi, atau hubungi %s via WhatsApp: %s.",
		a.snapshot.Name, a.snapshot.WhatsApp,
	)
}

// exhaustionReport composes the terminal failure message after every
// candidate failed. Different kinds may have occurred across different
// candidates, so the possible causes are listed generically, and the
// showroom's own contact channel is always included as the last-resort
// path.
func (a *Assistant) exhaustionReport() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Maaf, asisten kami sedang tidak dapat menjawab (%d model dicoba, semuanya gagal).\n\n", len(a.models))

	b.WriteString("Kemungkinan penyebab:\n")
	b.WriteString("- API key tidak valid atau sudah kedaluwarsa\n")
	b.WriteString("- Kuota atau rate limit habis\n")
	b.WriteString("- Model sedang tidak tersedia atau sudah dinonaktifkan\n")
	b.WriteString("- Pertanyaan terblokir oleh safety filter\n\n")

	b.WriteString("Yang bisa dicoba:\n")
	b.WriteString("- Kirim ulang pertanyaan dalam beberapa menit\n")
	b.WriteString("- Coba dengan kalimat yang berbeda\n")
	b.WriteString("- Periksa konfigurasi API key jika Anda pengelola sistem ini\n\n")

	fmt.Fprintf(&b, "Untuk bantuan langsung, hubungi %s via WhatsApp: %s", a.snapshot.Name, a.snapshot.WhatsApp)
	if a.snapshot.Email != "" {
		fmt.Fprintf(&b, " atau email: %s", a.snapshot.Email)
	}
	b.WriteString(". Tim kami siap membantu Anda.")

	return b.String()
}
