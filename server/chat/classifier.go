package chat

import (
	"encoding/json"
	"strings"

	"mindsoul/server/model"
)

// Classified is the outcome of interpreting one model reply. Exactly one
// branch is populated: Plan when the reply parsed as a JSON object, Chat
// carrying the original reply text otherwise.
type Classified struct {
	Plan *model.Plan
	Chat string
}

// IsPlan reports which branch this result took.
func (c Classified) IsPlan() bool {
	return c.Plan != nil
}

// StripFences removes a leading "```json" marker (with optional trailing
// whitespace) and a trailing "```" from the text. That is the only
// normalization attempted: no generic markdown handling, no extraction of
// JSON embedded in surrounding prose.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(s, "```json"); ok {
		s = strings.TrimLeft(rest, " \t\r\n")
	}
	if rest, ok := strings.CutSuffix(s, "```"); ok {
		s = strings.TrimRight(rest, " \t\r\n")
	}
	return s
}

// Classify decides whether a raw model reply is a structured plan or
// free-form chat. Parse success on a JSON object is the sole discriminator;
// an object with missing plan fields is still a plan (trusted-source
// policy). The chat branch carries the original text, not the cleaned one:
// fence stripping is a parsing aid, never a rewrite of the bot's visible
// words.
func Classify(raw string) Classified {
	cleaned := StripFences(raw)
	if !strings.HasPrefix(cleaned, "{") {
		return Classified{Chat: raw}
	}

	var plan model.Plan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return Classified{Chat: raw}
	}
	return Classified{Plan: &plan}
}
