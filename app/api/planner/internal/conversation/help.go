package conversation

import (
	"regexp"
	"strings"
)

type HelpTopic string

const (
	HelpHowTo    HelpTopic = "howTo"
	HelpAbout    HelpTopic = "about"
	HelpCreator  HelpTopic = "creator"
	HelpYelp     HelpTopic = "yelp"
	HelpFeatures HelpTopic = "features"
	HelpPrivacy  HelpTopic = "privacy"
	HelpGeneral  HelpTopic = "general"
)

type helpEntry struct {
	topic HelpTopic
	en    []string
	es    []string
}

var helpTable = []helpEntry{
	{HelpHowTo,
		[]string{"how", "help", "use", "usarlo", "usar", "work", "works", "start",
			"guide", "tutorial", "instructions", "how do i", "how to",
			"como uso", "como usarlo", "como funciona", "como usar"},
		[]string{"cómo", "como", "ayuda", "usar", "usarlo", "funciona", "empezar",
			"guía", "instrucciones", "tutorial", "como uso", "como usarlo",
			"como funciona", "como usar", "que hago", "k hago"}},
	{HelpAbout,
		[]string{"what is this", "what does", "yelpout", "this app", "purpose",
			"tell me about", "who are you", "who r u", "what are you", "what r u",
			"what do you do", "what u do", "introduce yourself", "about you",
			"who is this", "what is yelpout"},
		[]string{"qué es", "que es", "yelpout", "esta app", "propósito", "cuéntame",
			"cuentame", "sobre", "quien eres", "quién eres", "q eres", "que eres",
			"qué haces", "que haces", "k haces", "presentate", "sobre ti",
			"quien es", "que es yelpout"}},
	{HelpCreator,
		[]string{"who made", "who created", "who built", "developer", "creator",
			"domoforge", "who developed", "who owns", "author", "maker"},
		[]string{"quién hizo", "quien hizo", "quién creó", "quien creo",
			"desarrollador", "creador", "domoforge", "quien desarrollo",
			"quien es el dueño", "autor"}},
	{HelpYelp,
		[]string{"what is yelp", "yelp", "where data", "recommendations come from",
			"data source", "where from", "where do you get"},
		[]string{"qué es yelp", "que es yelp", "yelp", "de dónde", "de donde",
			"datos", "recomendaciones", "fuente de datos", "de donde sacas",
			"donde consigues"}},
	{HelpFeatures,
		[]string{"what can", "features", "capabilities", "can you", "options",
			"what do you offer", "what can you do", "what u can do",
			"abilities", "functions"},
		[]string{"qué puede", "que puede", "características", "capacidades",
			"puedes", "opciones", "qué puedes hacer", "que puedes hacer",
			"k puedes hacer", "funciones", "habilidades"}},
	{HelpPrivacy,
		[]string{"privacy", "data", "safe", "secure", "information", "tracking",
			"my data", "is it safe", "security"},
		[]string{"privacidad", "datos", "seguro", "información", "rastreo",
			"seguimiento", "mis datos", "es seguro", "seguridad"}},
}

var helpResponses = map[HelpTopic]map[Language]string{
	HelpHowTo: {
		LangEN: "📖 **How to use YelpOut:**\n\n" +
			"1. Tell me what you're planning: \"a date tonight\", \"family outing Saturday\"\n" +
			"2. Answer my questions about location, time, and preferences, or tap the suggestion chips\n" +
			"3. Get a complete itinerary with restaurants and activities\n" +
			"4. Tap any block to swap it, skip it, or see more options\n" +
			"5. Email yourself the final plan when you're happy with it\n\n" +
			"You can change anything mid-conversation: \"change the time to 8pm\", \"make it a birthday instead\". Let's go! 🚀",
		LangES: "📖 **Cómo usar YelpOut:**\n\n" +
			"1. Dime qué estás planeando: \"una cita esta noche\", \"salida familiar el sábado\"\n" +
			"2. Responde mis preguntas sobre ubicación, hora y preferencias, o toca las sugerencias\n" +
			"3. Recibe un itinerario completo con restaurantes y actividades\n" +
			"4. Toca cualquier bloque para cambiarlo, saltarlo o ver más opciones\n" +
			"5. Envíate el plan final por email cuando estés conforme\n\n" +
			"Puedes cambiar cualquier cosa a mitad de conversación: \"cambia la hora a las 8pm\", \"mejor un cumpleaños\". ¡Vamos! 🚀",
	},
	HelpAbout: {
		LangEN: "🎯 **About YelpOut:**\n\n" +
			"I'm a conversational planner that helps you create perfect outings through natural chat!\n\n" +
			"I remember everything you tell me, adapt suggestions to the time of day, and build " +
			"customized itineraries with restaurant and activity recommendations, ratings, prices, " +
			"and optimal time allocation. Fluent in English and Spanish.\n\n" +
			"Let's plan something amazing! 🎉",
		LangES: "🎯 **Sobre YelpOut:**\n\n" +
			"¡Soy un planificador conversacional que te ayuda a crear salidas perfectas a través de chat natural!\n\n" +
			"Recuerdo todo lo que me dices, adapto las sugerencias a la hora del día y construyo " +
			"itinerarios personalizados con recomendaciones de restaurantes y actividades, ratings, " +
			"precios y asignación óptima de tiempo. Fluido en inglés y español.\n\n" +
			"¡Planeemos algo increíble! 🎉",
	},
	HelpCreator: {
		LangEN: "👨‍💻 **About the Creator:**\n\n" +
			"I was created by **DomoForge**, a technology development team passionate about building " +
			"intelligent solutions.\n\n" +
			"• Developer: DomoForge\n• License: MIT (Open Source)\n" +
			"• Contact: support@domoforge.com\n• Live at: https://yelpout.domoforge.com\n\n" +
			"Want to contribute? Check out the GitHub repository 🚀",
		LangES: "👨‍💻 **Sobre el Creador:**\n\n" +
			"Fui creado por **DomoForge**, un equipo de desarrollo tecnológico apasionado por construir " +
			"soluciones inteligentes.\n\n" +
			"• Desarrollador: DomoForge\n• Licencia: MIT (Código Abierto)\n" +
			"• Contacto: support@domoforge.com\n• En vivo: https://yelpout.domoforge.com\n\n" +
			"¿Quieres contribuir? Revisa el repositorio en GitHub 🚀",
	},
	HelpYelp: {
		LangEN: "🔍 **About Yelp & Our Data:**\n\n" +
			"All recommendations come from Yelp's database of local businesses: names, addresses, " +
			"real user ratings, price levels ($ to $$$$), photos, categories, and locations.\n\n" +
			"YelpOut is powered by the Yelp Fusion API but is not affiliated with or endorsed by " +
			"Yelp Inc. I just help you discover the perfect places for your outing! 🎯",
		LangES: "🔍 **Sobre Yelp y Nuestros Datos:**\n\n" +
			"Todas las recomendaciones vienen de la base de datos de negocios locales de Yelp: nombres, " +
			"direcciones, calificaciones reales, niveles de precio ($ a $$$$), fotos, categorías y ubicaciones.\n\n" +
			"YelpOut funciona con la API Yelp Fusion pero no está afiliado ni respaldado por Yelp Inc. " +
			"¡Yo solo te ayudo a descubrir los lugares perfectos para tu salida! 🎯",
	},
	HelpFeatures: {
		LangEN: "✨ **What I Can Do:**\n\n" +
			"• Complete day itineraries with timing\n" +
			"• Restaurant recommendations based on time, mood, and budget\n" +
			"• Activity and dessert suggestions\n" +
			"• Budget filtering by price level\n" +
			"• Location-based search, including near you\n" +
			"• Bilingual chat, switch English/Spanish anytime\n" +
			"• Email delivery of your final plan\n" +
			"• Group-aware plans: family outings differ from dates, pet-friendly included\n\n" +
			"What would you like to explore? 🚀",
		LangES: "✨ **Lo Que Puedo Hacer:**\n\n" +
			"• Itinerarios completos con horarios\n" +
			"• Recomendaciones de restaurantes según hora, ambiente y presupuesto\n" +
			"• Sugerencias de actividades y postres\n" +
			"• Filtro de presupuesto por nivel de precio\n" +
			"• Búsqueda por ubicación, incluso cerca de ti\n" +
			"• Chat bilingüe, cambia entre inglés/español cuando quieras\n" +
			"• Envío de tu plan final por email\n" +
			"• Planes según el grupo: salidas familiares difieren de citas, pet-friendly incluido\n\n" +
			"¿Qué te gustaría explorar? 🚀",
	},
	HelpPrivacy: {
		LangEN: "🔒 **Privacy & Security:**\n\n" +
			"No tracking, no selling your data, no permanent storage, no account required. " +
			"Your conversation lives only in your session and clears when it expires. " +
			"Your location is used only when you give permission, and email addresses only to " +
			"send itineraries you request.\n\n" +
			"When you get recommendations, I query Yelp's API with your location and preferences; " +
			"Yelp may log those searches under their own privacy policy.\n\n" +
			"Your privacy matters! 🛡️",
		LangES: "🔒 **Privacidad y Seguridad:**\n\n" +
			"Sin rastreo, sin vender tus datos, sin almacenamiento permanente, sin necesidad de cuenta. " +
			"Tu conversación vive solo en tu sesión y se borra cuando expira. " +
			"Tu ubicación se usa solo cuando das permiso, y los emails solo para enviar los " +
			"itinerarios que solicitas.\n\n" +
			"Cuando obtienes recomendaciones, consulto la API de Yelp con tu ubicación y preferencias; " +
			"Yelp puede registrar esas búsquedas según su propia política de privacidad.\n\n" +
			"¡Tu privacidad importa! 🛡️",
	},
	HelpGeneral: {
		LangEN: "I didn't quite understand that.\n\n" +
			"Try asking:\n" +
			"• \"How to use this\"\n• \"What can you do\"\n• \"Who are you\"\n" +
			"• \"Who created this\"\n• \"What is Yelp\"\n• \"Privacy\"\n\n" +
			"Or start planning! Examples:\n" +
			"• \"Plan a romantic dinner tonight\"\n• \"Family outing this Saturday\"\n" +
			"• \"Coffee with friends tomorrow\"\n\n" +
			"I'll guide you through the rest!",
		LangES: "No entendí muy bien eso.\n\n" +
			"Intenta preguntar:\n" +
			"• \"Cómo usar esto\"\n• \"Qué puedes hacer\"\n• \"Quién eres\"\n" +
			"• \"Quién creó esto\"\n• \"Qué es Yelp\"\n• \"Privacidad\"\n\n" +
			"¡O empieza a planear! Ejemplos:\n" +
			"• \"Planea una cena romántica esta noche\"\n• \"Salida familiar este sábado\"\n" +
			"• \"Café con amigos mañana\"\n\n" +
			"¡Te guiaré en el resto!",
	},
}

type wordTypo struct {
	pattern *regexp.Regexp
	fix     string
}

func wholeWord(typo, fix string) wordTypo {
	return wordTypo{regexp.MustCompile(`(?i)\b` + typo + `\b`), fix}
}

// Shorthand fixes applied before keyword matching; whole words only so that
// "u" inside "use" survives.
var wordTypos = []wordTypo{
	wholeWord("k", "que"), wholeWord("q", "que"),
	wholeWord("xq", "porque"), wholeWord("pq", "porque"),
	wholeWord("tmb", "tambien"), wholeWord("tb", "tambien"),
	wholeWord("komo", "como"), wholeWord("kien", "quien"),
	wholeWord("acer", "hacer"), wholeWord("aser", "hacer"),
	wholeWord("haora", "ahora"),
	wholeWord("u", "you"), wholeWord("r", "are"), wholeWord("ur", "your"),
	wholeWord("plz", "please"), wholeWord("pls", "please"),
	wholeWord("thx", "thanks"),
	wholeWord("wat", "what"), wholeWord("wut", "what"), wholeWord("wht", "what"),
	wholeWord("hw", "how"), wholeWord("hlp", "help"),
}

func fixWordTypos(message string) string {
	fixed := strings.ToLower(message)
	for _, t := range wordTypos {
		fixed = t.pattern.ReplaceAllString(fixed, t.fix)
	}
	return fixed
}

var metaQuestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(what|how|who|tell|explain|describe)`),
	regexp.MustCompile(`(?i)\b(help|ayuda|about|sobre|creator|creador|yelp|you|eres|haces)\b`),
	regexp.MustCompile(`(?i)^(quien|quién|who|what|qué|que|como|cómo|how)`),
}

// IsMetaQuestion reports whether the message asks about the assistant itself
// rather than advancing the plan.
func IsMetaQuestion(message string) bool {
	lower := strings.ToLower(message)
	for _, p := range metaQuestionPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// DetectHelpQuery matches the message against the help-topic keyword tables,
// falling back to a generic "didn't understand" reply for meta questions that
// hit no specific topic.
func DetectHelpQuery(message string, lang Language) (HelpTopic, string, bool) {
	fixed := fixWordTypos(message)

	for _, entry := range helpTable {
		keywords := entry.en
		if lang == LangES {
			keywords = entry.es
		}
		if containsAny(fixed, keywords...) {
			return entry.topic, helpResponses[entry.topic][lang], true
		}
	}

	if IsMetaQuestion(fixed) {
		return HelpGeneral, helpResponses[HelpGeneral][lang], true
	}
	return "", "", false
}
