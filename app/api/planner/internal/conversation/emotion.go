package conversation

import (
	"fmt"
	"strings"
)

type Emotion string

const (
	EmotionPositive   Emotion = "positive"
	EmotionNegative   Emotion = "negative"
	EmotionGrateful   Emotion = "grateful"
	EmotionApologetic Emotion = "apologetic"
	EmotionNeutral    Emotion = "neutral"
)

type ComplaintSeverity string

const (
	SeverityLow    ComplaintSeverity = "low"
	SeverityMedium ComplaintSeverity = "medium"
	SeverityHigh   ComplaintSeverity = "high"
)

type emotionEntry struct {
	emotion Emotion
	en      []string
	es      []string
}

// Order matters: positive words are checked before negative ones so that a
// mixed message ("great but slow") reads as positive, matching the complaint
// detector's separate pass.
var emotionTable = []emotionEntry{
	{EmotionPositive,
		[]string{"love", "excellent", "amazing", "perfect", "great", "awesome",
			"wonderful", "fantastic", "brilliant", "outstanding"},
		[]string{"encanta", "excelente", "increíble", "perfecto", "genial",
			"maravilloso", "fantástico", "brillante", "magnífico"}},
	{EmotionNegative,
		[]string{"hate", "dislike", "bad", "terrible", "awful", "horrible",
			"worst", "poor", "disappointing", "not good", "don't like"},
		[]string{"odio", "no me gusta", "malo", "terrible", "horrible",
			"pésimo", "peor", "decepcionante", "no está bueno"}},
	{EmotionGrateful,
		[]string{"thank", "thanks", "appreciate", "grateful", "thx", "ty", "tysm"},
		[]string{"gracias", "agradezco", "agradecido", "grax", "grcs"}},
	{EmotionApologetic,
		[]string{"sorry", "apologize", "my bad", "excuse me", "pardon"},
		[]string{"perdón", "disculpa", "lo siento", "perdona", "disculpe"}},
}

var emotionResponses = map[Emotion]map[Language]string{
	EmotionPositive: {
		LangEN: "I'm so glad you're enjoying it! 🎉 Let me know if there's anything else I can help you with!",
		LangES: "¡Me alegra mucho que te esté gustando! 🎉 ¡Déjame saber si hay algo más en lo que pueda ayudarte!",
	},
	EmotionNegative: {
		LangEN: "I'm sorry to hear that. Your feedback helps me improve! 💙 Can you tell me more about what's not working for you?",
		LangES: "Lamento escuchar eso. ¡Tu feedback me ayuda a mejorar! 💙 ¿Puedes contarme más sobre qué no está funcionando para ti?",
	},
	EmotionGrateful: {
		LangEN: "You're very welcome! Happy to help! 😊",
		LangES: "¡De nada! ¡Feliz de ayudar! 😊",
	},
	EmotionApologetic: {
		LangEN: "No worries at all! We all make mistakes. Let's continue! 🙂",
		LangES: "¡No te preocupes! Todos cometemos errores. ¡Sigamos! 🙂",
	},
}

var restartKeywords = map[Language][]string{
	LangEN: {"start over", "restart", "begin again", "start again", "reset",
		"new plan", "from scratch", "start fresh", "clear everything", "forget all"},
	LangES: {"empezar de nuevo", "reiniciar", "comenzar de nuevo", "volver a empezar",
		"resetear", "nuevo plan", "desde cero", "empezar desde el principio",
		"borrar todo", "olvidar todo"},
}

type complaintEntry struct {
	severity ComplaintSeverity
	en       []string
	es       []string
}

var complaintTable = []complaintEntry{
	{SeverityHigh,
		[]string{"useless", "garbage", "trash", "waste of time", "doesn't work", "broken", "stupid"},
		[]string{"inútil", "basura", "pérdida de tiempo", "no funciona", "roto", "estúpido", "porquería"}},
	{SeverityMedium,
		[]string{"disappointed", "frustrating", "annoying", "confusing", "complicated", "slow", "buggy"},
		[]string{"decepcionado", "frustrante", "molesto", "confuso", "complicado", "lento", "con errores"}},
	{SeverityLow,
		[]string{"not great", "could be better", "not ideal", "not what i expected", "meh"},
		[]string{"no está genial", "podría ser mejor", "no es ideal", "no es lo que esperaba", "regular"}},
}

// DetectEmotion scans the message against the per-language keyword tables.
// The returned response is a canned acknowledgment in the user's language;
// empty when nothing matched.
func DetectEmotion(message string, lang Language) (Emotion, string, bool) {
	lower := strings.ToLower(message)
	for _, entry := range emotionTable {
		keywords := entry.en
		if lang == LangES {
			keywords = entry.es
		}
		if containsAny(lower, keywords...) {
			return entry.emotion, emotionResponses[entry.emotion][lang], true
		}
	}
	return EmotionNeutral, "", false
}

// DetectRestart reports whether the user asked to wipe the plan and start over.
func DetectRestart(message string, lang Language) bool {
	lower := strings.ToLower(message)
	keywords := restartKeywords[lang]
	return containsAny(lower, keywords...)
}

// DetectComplaint grades dissatisfaction by severity. A plain negative emotion
// without a specific complaint keyword still counts as a low-severity hit so
// it reaches the feedback pipeline.
func DetectComplaint(message string, lang Language) (ComplaintSeverity, bool) {
	lower := strings.ToLower(message)
	for _, entry := range complaintTable {
		keywords := entry.en
		if lang == LangES {
			keywords = entry.es
		}
		if containsAny(lower, keywords...) {
			return entry.severity, true
		}
	}
	if emotion, _, ok := DetectEmotion(message, lang); ok && emotion == EmotionNegative {
		return SeverityLow, true
	}
	return SeverityLow, false
}

// ComplaintResponse is the apology sent back alongside the logged complaint.
func ComplaintResponse(lang Language) string {
	if lang == LangES {
		return "Lamento mucho que hayas tenido una experiencia negativa. 😔\n\n" +
			"¡Tu feedback es increíblemente valioso! Todavía estoy aprendiendo y mejorando cada día. " +
			"He registrado tus comentarios para ayudar a mejorar la experiencia para todos.\n\n" +
			"¿Hay algo específico en lo que pueda ayudarte ahora mismo para mejorar tu experiencia? 💙"
	}
	return "I'm truly sorry you had a negative experience. 😔\n\n" +
		"Your feedback is incredibly valuable! I'm still learning and improving every day. " +
		"I've logged your feedback to help make the experience better for everyone.\n\n" +
		"Is there anything specific I can help you with right now to improve your experience? 💙"
}

// RestartResponse confirms a wipe in the user's language.
func RestartResponse(lang Language) string {
	if lang == LangES {
		return "¡Claro! Empecemos de nuevo. ¿Qué te gustaría planear? 🎉"
	}
	return "Sure! Let's start fresh. What would you like to plan? 🎉"
}

// ModificationAck confirms a mid-conversation field edit, echoing the value.
func ModificationAck(question QuestionKey, value string, lang Language) string {
	type ack struct{ en, es string }
	templates := map[QuestionKey]ack{
		QuestionStartTime: {
			en: "Got it! Changing the time to %s. Let me update your plan...",
			es: "¡Entendido! Cambiando la hora a %s. Déjame actualizar tu plan...",
		},
		QuestionDate: {
			en: "Perfect! Updating the date to %s. One moment...",
			es: "¡Perfecto! Actualizando la fecha a %s. Un momento...",
		},
		QuestionEventType: {
			en: "Sure! Changing the event type to %s. Updating recommendations...",
			es: "¡Claro! Cambiando el tipo de evento a %s. Actualizando recomendaciones...",
		},
		QuestionLocation: {
			en: "Alright! Moving to %s. Searching for places there...",
			es: "¡Muy bien! Cambiando a %s. Buscando lugares allí...",
		},
		QuestionBudget: {
			en: "Understood! Adjusting budget to %s. Updating options...",
			es: "¡Entendido! Ajustando presupuesto a %s. Actualizando opciones...",
		},
		QuestionDuration: {
			en: "Got it! Updating the duration to %s. Recalculating your plan...",
			es: "¡Entendido! Actualizando la duración a %s. Recalculando tu plan...",
		},
	}
	tpl, ok := templates[question]
	if !ok {
		return ""
	}
	if lang == LangES {
		return fmt.Sprintf(tpl.es, value)
	}
	return fmt.Sprintf(tpl.en, value)
}
