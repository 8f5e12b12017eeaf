package prompt

import "strings"

// BuildSystemPrompt assembles the persona system prompt from the personality
// answers collected during setup. Tone picks formal only when it strictly
// outweighs casual.
func BuildSystemPrompt(traits []string, toneFormal int, toneCasual int, responseStyle string, purpose string) string {
	traitsPart := "helpful"
	if len(traits) > 0 {
		traitsPart = strings.Join(traits, ", ")
	}

	tone := "casual"
	if toneFormal > toneCasual {
		tone = "formal"
	}

	var b strings.Builder
	b.WriteString("You are a ")
	b.WriteString(traitsPart)
	b.WriteString(" AI assistant with a ")
	b.WriteString(tone)
	b.WriteString(" tone.")
	if responseStyle != "" {
		b.WriteString(" Your response style is ")
		b.WriteString(responseStyle)
		b.WriteString(".")
	}
	if purpose != "" {
		b.WriteString(" Your purpose: ")
		b.WriteString(purpose)
		b.WriteString(".")
	}
	return b.String()
}
