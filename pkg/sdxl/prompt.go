package sdxl

import (
	"strconv"
	"strings"
)

// Pairs groups a flat token list into adjacent pairs, first to last.
// An odd-length list is rejected.
func Pairs(tokens []string) ([][2]string, error) {
	if len(tokens)%2 != 0 {
		return nil, NewArgumentError("expected an even number of tokens, got %d", len(tokens))
	}
	out := make([][2]string, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		out = append(out, [2]string{tokens[i], tokens[i+1]})
	}
	return out, nil
}

// ParsePrompts parses a flat prompt token list into prompt entries.
//
// A single token is shorthand for one bare prompt with weight 1.0. Any
// longer list must decompose into whole text/weight pairs, so an odd
// count greater than one is rejected.
func ParsePrompts(tokens []string) ([]PromptEntry, error) {
	if len(tokens) == 0 {
		return nil, NewArgumentError("at least one prompt is required")
	}
	if len(tokens) == 1 {
		return promptEntries([][2]string{{tokens[0], "1.0"}})
	}
	if len(tokens)%2 != 0 {
		return nil, NewArgumentError("prompts must be a single string, or pairs of text/weight values")
	}
	pairs, err := Pairs(tokens)
	if err != nil {
		return nil, err
	}
	return promptEntries(pairs)
}

func promptEntries(pairs [][2]string) ([]PromptEntry, error) {
	entries := make([]PromptEntry, 0, len(pairs))
	for _, p := range pairs {
		text := strings.TrimSpace(p[0])
		if text == "" {
			return nil, NewArgumentError("prompt text must not be empty")
		}
		weight, err := strconv.ParseFloat(p[1], 64)
		if err != nil {
			return nil, NewArgumentError("prompt weight %q is not a number", p[1])
		}
		entries = append(entries, PromptEntry{Text: text, Weight: weight})
	}
	return entries, nil
}
