package content

import "strings"

// Amplifiers are optional enhancement directives appended to a prompt by
// key. Unknown keys are ignored.
var amplifiers = map[string]string{
	"urgency":      "Use time-limited urgency throughout (deadlines, scarcity), without fabricating specific numbers.",
	"social_proof": "Weave in social proof framing: testimonials, user counts, authority signals.",
	"storytelling": "Open with a short narrative hook before making the pitch.",
	"luxury":       "Use an upscale, understated tone; avoid exclamation marks and hype words.",
	"direct":       "Be blunt and benefit-first. Short sentences. No filler.",
	"emotional":    "Lead with the emotional payoff of the product before features.",
	"data_driven":  "Anchor claims in the provided facts; prefer concrete specifics over adjectives.",
	"contrarian":   "Open by challenging a common belief the audience holds.",
}

// AmplifierKeys lists the supported enhancement keys.
func AmplifierKeys() []string {
	keys := make([]string, 0, len(amplifiers))
	for key := range amplifiers {
		keys = append(keys, key)
	}
	return keys
}

func applyAmplifiers(prompt string, keys []string) string {
	var directives []string
	for _, key := range keys {
		if directive, ok := amplifiers[strings.ToLower(strings.TrimSpace(key))]; ok {
			directives = append(directives, "- "+directive)
		}
	}
	if len(directives) == 0 {
		return prompt
	}

	return prompt + "\n\nStyle directives:\n" + strings.Join(directives, "\n")
}
