package pipeline

// DefaultPromptCharBudget bounds the resume text sent to the generator.
const DefaultPromptCharBudget = 24000

// truncationMarker joins the kept head and tail of an over-budget resume.
const truncationMarker = "[...truncated...]"

const (
	headShare = 0.67
	tailShare = 0.22
)

// TruncateForPrompt fits text into a character budget by keeping the head
// and a trailing slice, joined with an explicit marker. The head keeps the
// contact block and summary, the tail keeps the most recent experience.
// Budgets of zero or less fall back to the default.
func TruncateForPrompt(text string, budget int) string {
	if budget <= 0 {
		budget = DefaultPromptCharBudget
	}

	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}

	head := int(float64(budget) * headShare)
	tail := int(float64(budget) * tailShare)
	return string(runes[:head]) + "\n" + truncationMarker + "\n" + string(runes[len(runes)-tail:])
}
