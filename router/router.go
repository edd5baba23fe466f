package router

import (
	"context"
	"fmt"
	"time"

	"github.com/askdesk/askdesk/core"
	"github.com/askdesk/askdesk/index"
	"github.com/askdesk/askdesk/knowledge"
	"github.com/askdesk/askdesk/logging"
	"github.com/askdesk/askdesk/memory"
	"github.com/askdesk/askdesk/model"
	"github.com/askdesk/askdesk/order"
)

const (
	// DefaultAcceptThreshold is the minimum similarity for a FAQ neighbor to
	// be considered at all.
	DefaultAcceptThreshold = 0.5
	// DefaultConfidenceThreshold is the similarity above which a FAQ match is
	// returned immediately.
	DefaultConfidenceThreshold = 0.65
	// DefaultTopK is the number of neighbors requested from the index.
	DefaultTopK = 3
	// DefaultHistoryWindow is the number of trailing history messages sent to
	// the generative fallback.
	DefaultHistoryWindow = 6
	// DefaultCompleteTimeout bounds a single generative fallback call.
	DefaultCompleteTimeout = 30 * time.Second
	// GenerativeConfidence is the fixed confidence reported for generative
	// answers, since the adapter reports no native confidence.
	GenerativeConfidence = 0.8
)

// DefaultPersona is the system prompt sent to the generative fallback. It
// pins domain, identity and tone; the conversation window follows it.
const DefaultPersona = "Tu es l'assistant virtuel du service client d'une entreprise française. " +
	"Tu réponds en français, de manière brève, polie et factuelle, aux questions sur " +
	"l'entreprise, ses services et les commandes. Si tu ne sais pas, dis-le et propose " +
	"de contacter le service client."

const disclosureNote = "(Réponse générée automatiquement, en dehors de notre base de questions fréquentes.)"

const unresolvedText = "Je n'ai pas trouvé de réponse précise à votre question. " +
	"Vous pouvez la reformuler, me communiquer votre numéro de commande " +
	"(format CMD suivi de chiffres), ou contacter directement notre service client."

// Options configure a Router instance.
type Options struct {
	// AcceptThreshold and ConfidenceThreshold split FAQ matching into
	// confident matches and weak candidates. A neighbor below
	// AcceptThreshold is ignored; one at or above ConfidenceThreshold is
	// answered immediately.
	AcceptThreshold     float64
	ConfidenceThreshold float64
	TopK                int
	HistoryWindow       int

	// Completer enables the generative fallback tier; nil disables it.
	Completer       model.Completer
	Persona         string
	Temperature     float64
	MaxTokens       int64
	CompleteTimeout time.Duration

	// SurfaceWeakMatch returns a weak FAQ candidate (between the two
	// thresholds) as a low-confidence answer at the last tier instead of the
	// generic default.
	// Off by default, matching the historical behavior.
	SurfaceWeakMatch bool

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Router composes the knowledge base, similarity index and order ledger into
// the single resolution cascade.
type Router struct {
	base   *knowledge.Base
	idx    *index.Index
	ledger *order.Ledger
	opts   Options
}

// New creates a Router over the given immutable snapshots. A nil ledger
// disables the order tier; a nil Completer option disables the generative
// tier.
func New(base *knowledge.Base, idx *index.Index, ledger *order.Ledger, optFns ...func(o *Options)) *Router {
	opts := Options{
		AcceptThreshold:     DefaultAcceptThreshold,
		ConfidenceThreshold: DefaultConfidenceThreshold,
		TopK:                DefaultTopK,
		HistoryWindow:       DefaultHistoryWindow,
		Persona:             DefaultPersona,
		Temperature:         0.7,
		CompleteTimeout:     DefaultCompleteTimeout,
		Logger:              logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Router{base: base, idx: idx, ledger: ledger, opts: opts}
}

// Resolve evaluates the cascade for one utterance. Per-request failures are
// absorbed into a degraded-but-successful response; the caller never needs
// request-level error handling.
func (r *Router) Resolve(ctx context.Context, utterance string, history []core.Message) core.Response {
	if resp, terminal := r.resolveOrder(utterance); terminal {
		return resp
	}

	resp, weak := r.resolveFAQ(ctx, utterance)
	if resp != nil {
		return *resp
	}

	if generated := r.resolveGenerative(ctx, utterance, history); generated != nil {
		return *generated
	}

	if weak != nil && r.opts.SurfaceWeakMatch {
		return *weak
	}
	return core.Response{Text: unresolvedText, Kind: core.KindUnresolved}
}

// resolveOrder is tier 1. Any detected reference is terminal: a misformatted
// or unknown order id is not a semantic question, so it never falls through
// to the FAQ or generative tiers.
func (r *Router) resolveOrder(utterance string) (core.Response, bool) {
	if r.ledger == nil {
		return core.Response{}, false
	}
	ref, found := order.DetectReference(utterance)
	if !found {
		return core.Response{}, false
	}
	rec, ok := r.ledger.Get(ref)
	if !ok {
		r.opts.Logger.Info("Order reference not in ledger", "reference", ref)
		text := fmt.Sprintf("Je n'ai trouvé aucune commande portant la référence %s. "+
			"Vérifiez le numéro (format CMD suivi de chiffres) ou contactez notre service client.", ref)
		return core.Response{Text: text, Kind: core.KindOrderNotFound}, true
	}
	return core.Response{
		Text:       order.Summary(rec),
		Kind:       core.KindOrderStatus,
		Confidence: core.Float(1.0),
	}, true
}

// resolveFAQ is tier 2. It returns a terminal response for a confident match,
// or a preserved weak candidate for the last tier, or neither.
func (r *Router) resolveFAQ(ctx context.Context, utterance string) (terminal, weak *core.Response) {
	matches, err := r.idx.Query(ctx, utterance, r.opts.TopK)
	if err != nil {
		// Embedding failure on a single query degrades to the next tier.
		r.opts.Logger.Warn("FAQ query failed", "error", err.Error())
		return nil, nil
	}
	if len(matches) == 0 || matches[0].Similarity <= r.opts.AcceptThreshold {
		return nil, nil
	}

	best := matches[0]
	entry := r.base.Entry(best.EntryIndex)
	resp := &core.Response{
		Text:            entry.Answer,
		Kind:            core.KindFAQMatch,
		Confidence:      core.Float(best.Similarity),
		Tags:            entry.Tags,
		MatchedQuestion: entry.Question,
	}
	if best.Similarity > r.opts.ConfidenceThreshold {
		return resp, nil
	}
	return nil, resp
}

// resolveGenerative is tier 3. Adapter failures (timeout, transport error,
// malformed response) are absorbed; the cascade continues to the default tier.
func (r *Router) resolveGenerative(ctx context.Context, utterance string, history []core.Message) *core.Response {
	if r.opts.Completer == nil {
		return nil
	}

	window := memory.LastN(history, r.opts.HistoryWindow)
	messages := make([]model.PromptMessage, 0, len(window)+1)
	for _, m := range window {
		messages = append(messages, model.PromptMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, model.PromptMessage{Role: core.RoleUser, Content: utterance})

	callCtx, cancel := context.WithTimeout(ctx, r.opts.CompleteTimeout)
	defer cancel()

	start := time.Now()
	text, err := r.opts.Completer.Complete(callCtx, model.Request{
		Persona:     r.opts.Persona,
		Messages:    messages,
		Temperature: r.opts.Temperature,
		MaxTokens:   r.opts.MaxTokens,
	})
	if err != nil {
		r.opts.Logger.Warn("Generative fallback failed",
			"provider", r.opts.Completer.Info().Provider,
			"duration", time.Since(start),
			"error", err.Error())
		return nil
	}
	if text == "" {
		r.opts.Logger.Warn("Generative fallback returned empty completion")
		return nil
	}

	return &core.Response{
		Text:       text + "\n\n" + disclosureNote,
		Kind:       core.KindGenerative,
		Confidence: core.Float(GenerativeConfidence),
	}
}
