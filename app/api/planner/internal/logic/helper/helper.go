package helper

import (
	"time"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
)

// Lang normalizes the wire language code, falling back to the session's.
func Lang(requested string, fallback conversation.Language) conversation.Language {
	switch requested {
	case "es":
		return conversation.LangES
	case "en":
		return conversation.LangEN
	default:
		if fallback != "" {
			return fallback
		}
		return conversation.LangEN
	}
}

// NextPrompt picks the next flow question for the context and returns its
// localized text, chips, and key. Empty key means nothing left to ask.
func NextPrompt(ctx *conversation.PlanContext, lang conversation.Language, now time.Time) (conversation.QuestionKey, string, []string) {
	q := conversation.NextQuestion(ctx)
	if q == nil {
		return "", "", nil
	}
	return q.Key, conversation.QuestionPrompt(q.Key, lang), conversation.QuestionChips(q, ctx, now)
}

// PromptFor re-asks a specific question, used when an answer failed validation.
func PromptFor(key conversation.QuestionKey, ctx *conversation.PlanContext, lang conversation.Language, now time.Time) (string, []string) {
	q := conversation.QuestionByKey(key)
	if q == nil {
		return "", nil
	}
	return conversation.QuestionPrompt(key, lang), conversation.QuestionChips(q, ctx, now)
}
