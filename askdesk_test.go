package askdesk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdesk/askdesk/core"
	"github.com/askdesk/askdesk/knowledge"
	"github.com/askdesk/askdesk/model"
	"github.com/askdesk/askdesk/order"
	"github.com/askdesk/askdesk/router"
)

func newTestAssistant(t *testing.T, optFns ...func(o *Options)) *Assistant {
	t.Helper()
	base, err := knowledge.New(knowledge.DefaultEntries())
	require.NoError(t, err)

	fns := append([]func(o *Options){func(o *Options) {
		o.Knowledge = base
		o.Orders = order.SampleRecords()
	}}, optFns...)

	a, err := New(context.Background(), fns...)
	require.NoError(t, err)
	return a
}

func TestResolveExactQuestion(t *testing.T) {
	a := newTestAssistant(t)

	// The mock embedder is deterministic, so the literal question text is a
	// perfect match above the confidence threshold.
	resp := a.Resolve(context.Background(), "s1", "Quels sont vos horaires d'ouverture ?")
	assert.Equal(t, core.KindFAQMatch, resp.Kind)
	assert.Equal(t, "Nous sommes ouverts du lundi au vendredi de 9h à 18h.", resp.Text)
	require.NotNil(t, resp.Confidence)
	assert.InDelta(t, 1.0, *resp.Confidence, 1e-5)
}

func TestResolveOrderThroughFacade(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.Resolve(context.Background(), "s1", "où en est cmd67890 ?")
	assert.Equal(t, core.KindOrderStatus, resp.Kind)
	assert.Contains(t, resp.Text, "CMD67890")
	assert.Contains(t, resp.Text, "Livrée")
}

func TestResolveRecordsExchange(t *testing.T) {
	a := newTestAssistant(t)

	resp := a.Resolve(context.Background(), "s1", "Quels sont vos horaires d'ouverture ?")

	history := a.History("s1")
	require.Len(t, history, 2)
	assert.Equal(t, core.RoleUser, history[0].Role)
	assert.Equal(t, "Quels sont vos horaires d'ouverture ?", history[0].Content)
	assert.Equal(t, core.RoleAssistant, history[1].Role)
	assert.Equal(t, resp.Text, history[1].Content)
	assert.Equal(t, string(core.KindFAQMatch), history[1].Metadata["kind"])
	assert.Equal(t, "Quels sont vos horaires d'ouverture ?", history[1].Metadata["matched_question"])
	assert.False(t, history[1].Timestamp.IsZero())
}

func TestSessionsAreIsolated(t *testing.T) {
	a := newTestAssistant(t)

	a.Resolve(context.Background(), "alice", "Quels sont vos horaires d'ouverture ?")
	assert.Len(t, a.History("alice"), 2)
	assert.Empty(t, a.History("bob"))

	a.ResetSession("alice")
	assert.Empty(t, a.History("alice"))
}

func TestGenerativeHistoryFeedsPrompt(t *testing.T) {
	completer := model.NewMockCompleter()
	completer.AddResponse("et ensuite ?", "Voici la suite.")

	a := newTestAssistant(t, func(o *Options) { o.Completer = completer })

	// An unknown question with a completer configured lands on tier 3.
	resp := a.Resolve(context.Background(), "s1", "et ensuite ?")
	assert.Equal(t, core.KindGenerative, resp.Kind)
	assert.Contains(t, resp.Text, "Voici la suite.")
}

func TestNewFailsOnMissingOrdersFile(t *testing.T) {
	base, err := knowledge.New(knowledge.DefaultEntries())
	require.NoError(t, err)

	_, err = New(context.Background(), func(o *Options) {
		o.Knowledge = base
		o.OrdersPath = filepath.Join(t.TempDir(), "absent.json")
	})
	assert.Error(t, err)
}

func TestReloadKnowledgeSwapsSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faq.json")

	a, err := New(context.Background(), func(o *Options) {
		o.KnowledgePath = path // absent: defaults written there
	})
	require.NoError(t, err)
	assert.Equal(t, len(knowledge.DefaultEntries()), a.KnowledgeSize())

	doc := `{"questions":[{"question":"Livrez-vous le samedi ?","reponse":"Oui, avant midi.","tags":["livraison"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	require.NoError(t, a.ReloadKnowledge(context.Background()))

	assert.Equal(t, 1, a.KnowledgeSize())
	resp := a.Resolve(context.Background(), "s1", "Livrez-vous le samedi ?")
	assert.Equal(t, core.KindFAQMatch, resp.Kind)
	assert.Equal(t, "Oui, avant midi.", resp.Text)
}

func TestWeakMatchPolicyWiredThroughOptions(t *testing.T) {
	a := newTestAssistant(t, func(o *Options) {
		o.RouterOptions = []func(ro *router.Options){func(ro *router.Options) {
			ro.SurfaceWeakMatch = true
		}}
	})

	// Mock embeddings make unrelated texts nearly orthogonal, so there is no
	// weak candidate here; the point is that the option reaches the router
	// without disturbing normal matching.
	resp := a.Resolve(context.Background(), "s1", "Quels sont vos horaires d'ouverture ?")
	assert.Equal(t, core.KindFAQMatch, resp.Kind)
}
