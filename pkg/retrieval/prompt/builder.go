package prompt

import (
	"fmt"
	"strings"

	"ai-onboarding-be/internal/constant"
	"ai-onboarding-be/pkg/store"
)

// ContextualBuilder builds the grounded answer prompt.
type ContextualBuilder struct {
	query   string
	role    string
	context *store.AssembledContext
}

// NewContextualBuilder creates a prompt builder for one request.
func NewContextualBuilder(query, role string, context *store.AssembledContext) *ContextualBuilder {
	return &ContextualBuilder{
		query:   query,
		role:    role,
		context: context,
	}
}

// Build creates the prompt sent to the generation model. Each passage is
// labelled with its source document so the model can attribute every claim.
func (b *ContextualBuilder) Build() string {
	var prompt strings.Builder

	b.writeReferenceMaterial(&prompt)
	b.writeTask(&prompt)
	b.writeGuidelines(&prompt)
	b.writeUserQuery(&prompt)

	return prompt.String()
}

func (b *ContextualBuilder) writeReferenceMaterial(prompt *strings.Builder) {
	if b.context.Empty() {
		return
	}

	prompt.WriteString("<reference_material>\n")
	for i, sp := range b.context.Passages {
		p := sp.Passage
		prompt.WriteString(fmt.Sprintf("--- Passage %d [document: %s] %s ---\n", i+1, p.DocumentID, p.Title))
		prompt.WriteString(p.Text)
		prompt.WriteString("\n")
	}
	prompt.WriteString("</reference_material>\n\n")
}

func (b *ContextualBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("You are an onboarding assistant helping ministry staff find answers in internal documents.\n")
	prompt.WriteString("Answer the user's question using only the reference material above.\n")
	if roleCtx, ok := constant.RoleContexts[b.role]; ok {
		prompt.WriteString(roleCtx)
		prompt.WriteString("\n")
	}
	prompt.WriteString("</task>\n\n")
}

func (b *ContextualBuilder) writeGuidelines(prompt *strings.Builder) {
	prompt.WriteString("<guidelines>\n")
	prompt.WriteString("1. Base your answer strictly on the reference material provided\n")
	prompt.WriteString("2. Mention the document a claim comes from when it helps the reader verify it\n")
	prompt.WriteString("3. If the material does not contain what is being asked, say so honestly\n")
	prompt.WriteString("4. Match the language of the question\n")
	prompt.WriteString("5. Be concise: a few sentences, or a short list when the question calls for one\n")
	prompt.WriteString("</guidelines>\n\n")
}

func (b *ContextualBuilder) writeUserQuery(prompt *strings.Builder) {
	prompt.WriteString("<user_question>\n")
	prompt.WriteString(b.query)
	prompt.WriteString("\n</user_question>\n\n")
	prompt.WriteString("Now provide your complete response based on the reference material:")
}
