package conversation

type prompt struct{ en, es string }

var questionPrompts = map[QuestionKey]prompt{
	QuestionEventType: {
		en: "What are we planning? A date, a celebration, time with friends?",
		es: "¿Qué estamos planeando? ¿Una cita, una celebración, tiempo con amigos?",
	},
	QuestionLocation: {
		en: "Where should I look? A city, a ZIP code, or I can use your location.",
		es: "¿Dónde busco? Una ciudad, un código postal, o puedo usar tu ubicación.",
	},
	QuestionDate: {
		en: "When is the outing?",
		es: "¿Cuándo es la salida?",
	},
	QuestionStartTime: {
		en: "What time do you want to start?",
		es: "¿A qué hora quieres empezar?",
	},
	QuestionDuration: {
		en: "How long should the outing last?",
		es: "¿Cuánto debería durar la salida?",
	},
	QuestionGroupSize: {
		en: "How many people are going?",
		es: "¿Cuántas personas van?",
	},
	QuestionGroupType: {
		en: "Who's coming along?",
		es: "¿Quiénes vienen?",
	},
	QuestionHasPets: {
		en: "Are you bringing any pets?",
		es: "¿Llevas mascotas?",
	},
	QuestionBudget: {
		en: "What's your budget looking like?",
		es: "¿Cómo anda el presupuesto?",
	},
	QuestionCuisine: {
		en: "Any cuisine you're craving?",
		es: "¿Se te antoja alguna cocina en especial?",
	},
	QuestionMood: {
		en: "What vibe are you going for?",
		es: "¿Qué ambiente buscas?",
	},
	QuestionClarifyAmPm: {
		en: "Just to confirm, is that AM or PM?",
		es: "Solo para confirmar, ¿es AM o PM?",
	},
}

// QuestionPrompt returns the localized text for a question.
func QuestionPrompt(key QuestionKey, lang Language) string {
	p, ok := questionPrompts[key]
	if !ok {
		return ""
	}
	if lang == LangES {
		return p.es
	}
	return p.en
}

var miscPrompts = map[string]prompt{
	"greeting": {
		en: "Hi! I'm your outing planner. Tell me what you'd like to do, for example \"a date tonight in Dallas\".",
		es: "¡Hola! Soy tu planificador de salidas. Cuéntame qué te gustaría hacer, por ejemplo \"una cita esta noche en Dallas\".",
	},
	"planReady": {
		en: "Your plan is ready! 🎉 Tap any block to see options, swap it, or skip it.",
		es: "¡Tu plan está listo! 🎉 Toca cualquier bloque para ver opciones, cambiarlo o saltarlo.",
	},
	"pastTime": {
		en: "That time has already passed today. Pick a later time or another date.",
		es: "Esa hora ya pasó hoy. Elige una hora más tarde u otra fecha.",
	},
	"locating": {
		en: "Getting your location...",
		es: "Obteniendo tu ubicación...",
	},
	"itineraryQueued": {
		en: "Your itinerary is on its way to your inbox! 📧",
		es: "¡Tu itinerario va en camino a tu correo! 📧",
	},
	"didntCatch": {
		en: "I didn't catch that, could you say it another way?",
		es: "No entendí eso, ¿puedes decirlo de otra forma?",
	},
}

// MiscPrompt returns a localized non-question message by key.
func MiscPrompt(key string, lang Language) string {
	p, ok := miscPrompts[key]
	if !ok {
		return ""
	}
	if lang == LangES {
		return p.es
	}
	return p.en
}
