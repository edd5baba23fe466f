package core

// Kind discriminates which cascade tier produced a Response.
type Kind string

const (
	// KindOrderStatus is a successful order lookup from a detected reference.
	KindOrderStatus Kind = "order_status"
	// KindOrderNotFound is a detected order reference absent from the ledger.
	KindOrderNotFound Kind = "order_not_found"
	// KindFAQMatch is an answer retrieved from the knowledge base.
	KindFAQMatch Kind = "faq_match"
	// KindGenerative is an answer produced by the generative fallback.
	KindGenerative Kind = "generative"
	// KindUnresolved is the terminal default when no tier produced an answer.
	KindUnresolved Kind = "unresolved"
)

// Response is the structurally uniform record returned for every resolved
// utterance, discriminated by Kind. It is transient: constructed per request,
// consumed by the caller to render and to record the exchange.
//
// Confidence is a pointer so "no confidence reported" (order_not_found,
// unresolved) is distinguishable from an actual score of zero.
type Response struct {
	Text            string   `json:"text"`
	Kind            Kind     `json:"kind"`
	Confidence      *float64 `json:"confidence,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	MatchedQuestion string   `json:"matched_question,omitempty"`
}

// ConfidenceOrZero returns the confidence value, or 0 when absent.
func (r Response) ConfidenceOrZero() float64 {
	if r.Confidence == nil {
		return 0
	}
	return *r.Confidence
}

// Float creates a pointer to a float64 value. Useful for the optional
// Confidence field where nil indicates "not set".
func Float(v float64) *float64 { return &v }
