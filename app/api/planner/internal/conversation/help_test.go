package conversation_test

import (
	"testing"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
)

func TestDetectHelpQueryTopics(t *testing.T) {
	cases := []struct {
		message string
		lang    conversation.Language
		want    conversation.HelpTopic
	}{
		{"how do I use this", conversation.LangEN, conversation.HelpHowTo},
		{"who created this", conversation.LangEN, conversation.HelpCreator},
		{"what is yelp", conversation.LangEN, conversation.HelpYelp},
		{"is my data safe", conversation.LangEN, conversation.HelpPrivacy},
		{"como funciona", conversation.LangES, conversation.HelpHowTo},
		{"quien hizo esto", conversation.LangES, conversation.HelpCreator},
	}
	for _, c := range cases {
		topic, response, ok := conversation.DetectHelpQuery(c.message, c.lang)
		if !ok || topic != c.want {
			t.Errorf("DetectHelpQuery(%q) = %q/%v, want %q", c.message, topic, ok, c.want)
		}
		if response == "" {
			t.Errorf("DetectHelpQuery(%q) returned empty response", c.message)
		}
	}
}

func TestDetectHelpQueryFixesShorthand(t *testing.T) {
	topic, _, ok := conversation.DetectHelpQuery("hw do u start", conversation.LangEN)
	if !ok || topic != conversation.HelpHowTo {
		t.Fatalf("shorthand = %q/%v, want howTo", topic, ok)
	}

	topic, _, ok = conversation.DetectHelpQuery("k puedes hacer", conversation.LangES)
	if !ok || topic != conversation.HelpFeatures {
		t.Fatalf("spanish shorthand = %q/%v, want features", topic, ok)
	}
}

func TestDetectHelpQueryNoMatch(t *testing.T) {
	if _, _, ok := conversation.DetectHelpQuery("dinner tonight at 7", conversation.LangEN); ok {
		t.Error("planning message treated as help query")
	}
}

func TestIsMetaQuestion(t *testing.T) {
	if !conversation.IsMetaQuestion("what can you do") {
		t.Error("meta question not recognized")
	}
	if conversation.IsMetaQuestion("dinner in Plano tomorrow") {
		t.Error("planning message flagged as meta question")
	}
}
