package constant

// Deterministic fallback answers for the degraded paths. These must never be
// produced by the generation model so callers can rely on their wording.
const (
	NoRelevantDocumentAnswer = "I could not find any document relevant to your question. Try different keywords, or ask about another topic."

	GenerationFailedAnswer = "I found relevant documents but could not generate an answer right now. Please try again shortly; the cited documents are the best starting point in the meantime."
)

// Role descriptions injected into the answer prompt so responses respect the
// caller's vantage point.
var RoleContexts = map[string]string{
	"admin":    "The user is a system administrator with full access to all documents, including restricted administrative material.",
	"minister": "The user is a ministry executive with access to executive and analytical documents.",
	"analyst":  "The user is a data analyst with access to analytical documents only.",
}
