// Package askdesk provides a high-level façade over the resolution cascade
// and its supporting services (knowledge base, similarity index, order
// ledger, per-session conversation memory & logging) enabling rapid
// construction of semantic FAQ assistants. Most applications interact with
// this package by:
//  1. Creating an Assistant via New() (optionally overriding default services)
//  2. Resolving user utterances per session via Resolve()
//  3. Replaying a session's conversation via History()
//
// The façade delegates decision making to router.Router while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply a real embedding
// provider, a generative completer and a structured logger.
package askdesk

import (
	"context"
	"fmt"
	"sync"
	"time"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	openaisdk "github.com/openai/openai-go"

	"github.com/askdesk/askdesk/config"
	"github.com/askdesk/askdesk/core"
	"github.com/askdesk/askdesk/embedding"
	"github.com/askdesk/askdesk/index"
	"github.com/askdesk/askdesk/knowledge"
	"github.com/askdesk/askdesk/logging"
	"github.com/askdesk/askdesk/memory"
	"github.com/askdesk/askdesk/model"
	modelanthropic "github.com/askdesk/askdesk/model/anthropic"
	modelopenai "github.com/askdesk/askdesk/model/openai"
	"github.com/askdesk/askdesk/order"
	"github.com/askdesk/askdesk/router"
	"github.com/askdesk/askdesk/session"
)

// Options configures the Assistant instance.
type Options struct {
	// KnowledgePath locates the JSON knowledge document. When the file is
	// absent the built-in default set is written there. Ignored when
	// Knowledge is provided directly.
	KnowledgePath string
	Knowledge     *knowledge.Base

	// Orders seeds the ledger directly; OrdersPath loads it from a JSON seed
	// file instead. When neither is set the order tier is disabled.
	Orders     []order.Record
	OrdersPath string

	// Embedder turns text into vectors (defaults to the deterministic mock,
	// which only matches literally identical questions).
	Embedder embedding.Embedder

	// Completer enables the generative fallback tier; nil disables it.
	Completer model.Completer

	// MaxMessages bounds each session's conversation memory.
	MaxMessages int

	// RouterOptions tune thresholds, persona and weak-match policy.
	RouterOptions []func(o *router.Options)

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Assistant is the high-level façade aggregating the resolution pipeline and
// per-session conversation memory. Safe for concurrent use; the knowledge
// snapshot is swapped atomically on reload.
type Assistant struct {
	opts     Options
	logger   logging.Logger
	sessions *session.InMemoryStore

	mu     sync.RWMutex
	base   *knowledge.Base
	idx    *index.Index
	ledger *order.Ledger
	router *router.Router
}

// New creates a new Assistant with optional overrides. The knowledge base is
// embedded once here; an unreachable embedding provider makes construction
// fail since no matching can proceed without vectors.
func New(ctx context.Context, optFns ...func(o *Options)) (*Assistant, error) {
	opts := Options{
		KnowledgePath: "data/faq.json",
		Embedder:      embedding.NewMock(0),
		MaxMessages:   memory.DefaultMaxMessages,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	base := opts.Knowledge
	if base == nil {
		loaded, err := knowledge.Load(opts.KnowledgePath)
		if err != nil {
			return nil, fmt.Errorf("load knowledge base: %w", err)
		}
		base = loaded
	}

	var ledger *order.Ledger
	switch {
	case len(opts.Orders) > 0:
		l, err := order.NewLedger(opts.Orders...)
		if err != nil {
			return nil, fmt.Errorf("seed order ledger: %w", err)
		}
		ledger = l
	case opts.OrdersPath != "":
		l, err := order.LoadLedger(opts.OrdersPath)
		if err != nil {
			return nil, fmt.Errorf("load order ledger: %w", err)
		}
		ledger = l
	}

	start := time.Now()
	idx, err := index.Build(ctx, opts.Embedder, base)
	if err != nil {
		return nil, fmt.Errorf("build similarity index: %w", err)
	}
	opts.Logger.Info("Similarity index built", "entries", idx.Len(), "duration", time.Since(start))

	a := &Assistant{
		opts:     opts,
		logger:   opts.Logger,
		sessions: session.NewInMemoryStore(opts.MaxMessages),
		base:     base,
		idx:      idx,
		ledger:   ledger,
	}
	a.router = a.newRouter(base, idx, ledger)
	return a, nil
}

func (a *Assistant) newRouter(base *knowledge.Base, idx *index.Index, ledger *order.Ledger) *router.Router {
	optFns := append([]func(o *router.Options){func(o *router.Options) {
		o.Completer = a.opts.Completer
		o.Logger = a.logger
	}}, a.opts.RouterOptions...)
	return router.New(base, idx, ledger, optFns...)
}

// Resolve runs the cascade for one utterance within a session and records
// the exchange in that session's conversation memory. It never returns an
// error: per-request failures degrade to an unresolved response.
func (a *Assistant) Resolve(ctx context.Context, sessionID, utterance string) core.Response {
	conv := a.sessions.Get(sessionID)

	a.mu.RLock()
	r := a.router
	a.mu.RUnlock()

	start := time.Now()
	resp := r.Resolve(ctx, utterance, conv.Messages())
	a.logger.Info("Resolution completed",
		"session_id", sessionID,
		"kind", string(resp.Kind),
		"confidence", resp.ConfidenceOrZero(),
		"duration", time.Since(start))

	a.recordExchange(conv, utterance, resp)
	return resp
}

// recordExchange appends both sides of an exchange to the conversation,
// mirroring the response attributes into the assistant message metadata.
func (a *Assistant) recordExchange(conv *memory.Conversation, utterance string, resp core.Response) {
	conv.AppendUser(utterance)
	md := map[string]any{
		"kind":       string(resp.Kind),
		"confidence": resp.ConfidenceOrZero(),
	}
	if resp.MatchedQuestion != "" {
		md["matched_question"] = resp.MatchedQuestion
	}
	if len(resp.Tags) > 0 {
		md["tags"] = resp.Tags
	}
	conv.AppendAssistant(resp.Text, md)
}

// History returns the retained conversation of a session in order.
func (a *Assistant) History(sessionID string) []core.Message {
	return a.sessions.Get(sessionID).Messages()
}

// ResetSession discards a session's conversation memory.
func (a *Assistant) ResetSession(sessionID string) { a.sessions.Reset(sessionID) }

// KnowledgeSize returns the number of entries currently indexed.
func (a *Assistant) KnowledgeSize() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.base.Len()
}

// ReloadKnowledge re-reads the knowledge file, re-embeds it and swaps the
// snapshot atomically. Ongoing resolutions keep the previous snapshot.
func (a *Assistant) ReloadKnowledge(ctx context.Context) error {
	if a.opts.KnowledgePath == "" {
		return fmt.Errorf("no knowledge path configured")
	}
	base, err := knowledge.Load(a.opts.KnowledgePath)
	if err != nil {
		return fmt.Errorf("reload knowledge base: %w", err)
	}
	idx, err := index.Build(ctx, a.opts.Embedder, base)
	if err != nil {
		return fmt.Errorf("rebuild similarity index: %w", err)
	}

	a.mu.Lock()
	a.base = base
	a.idx = idx
	a.router = a.newRouter(base, idx, a.ledger)
	a.mu.Unlock()

	a.logger.Info("Knowledge base reloaded", "entries", base.Len())
	return nil
}

// WatchKnowledge blocks watching the knowledge file, reloading on every
// rewrite until ctx is cancelled. Run it in its own goroutine.
func (a *Assistant) WatchKnowledge(ctx context.Context) error {
	w, err := knowledge.NewWatcher(a.opts.KnowledgePath)
	if err != nil {
		return fmt.Errorf("watch knowledge file: %w", err)
	}
	defer w.Close()

	return w.Watch(ctx, func() {
		if err := a.ReloadKnowledge(ctx); err != nil {
			a.logger.Warn("Knowledge reload failed", "error", err.Error())
		}
	})
}

// FromConfig creates an Assistant wired from a deployment configuration.
func FromConfig(ctx context.Context, cfg *config.Config) (*Assistant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var embedder embedding.Embedder = embedding.NewOpenAI(func(o *embedding.OpenAIOptions) {
		if cfg.Embedding.Model != "" {
			o.Model = openaisdk.EmbeddingModel(cfg.Embedding.Model)
		}
	})

	var completer model.Completer
	switch cfg.Fallback.Provider {
	case "openai":
		completer = modelopenai.NewCompleter(func(o *modelopenai.Options) {
			if cfg.Fallback.Model != "" {
				o.Model = cfg.Fallback.Model
			}
		})
	case "anthropic":
		completer = modelanthropic.NewCompleter(func(o *modelanthropic.Options) {
			if cfg.Fallback.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Fallback.Model)
			}
		})
	}

	logger := logging.NewSlogLogger(parseLevel(cfg.Logging.Level), cfg.Logging.Format, false)

	return New(ctx, func(o *Options) {
		o.KnowledgePath = cfg.KnowledgePath
		o.OrdersPath = cfg.OrdersPath
		o.Embedder = embedder
		o.Completer = completer
		o.MaxMessages = cfg.Memory.MaxMessages
		o.Logger = logger
		o.RouterOptions = []func(ro *router.Options){func(ro *router.Options) {
			ro.AcceptThreshold = cfg.Matching.AcceptThreshold
			ro.ConfidenceThreshold = cfg.Matching.ConfidenceThreshold
			ro.TopK = cfg.Matching.TopK
			ro.SurfaceWeakMatch = cfg.Matching.SurfaceWeakMatch
			if cfg.Fallback.Persona != "" {
				ro.Persona = cfg.Fallback.Persona
			}
			if cfg.Fallback.Temperature > 0 {
				ro.Temperature = cfg.Fallback.Temperature
			}
			if cfg.Fallback.MaxTokens > 0 {
				ro.MaxTokens = cfg.Fallback.MaxTokens
			}
			if cfg.Fallback.TimeoutSeconds > 0 {
				ro.CompleteTimeout = time.Duration(cfg.Fallback.TimeoutSeconds) * time.Second
			}
			if cfg.Fallback.HistoryWindow > 0 {
				ro.HistoryWindow = cfg.Fallback.HistoryWindow
			}
		}}
	})
}

func parseLevel(level string) logging.LogLevel {
	switch level {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}
