package intent

import (
	"strings"

	"nird.dev/outreach/internal/model"
)

// fallbackRule pairs a predicate with the result it produces. Rules are
// evaluated in order, first match wins, so the table order IS the priority
// order (donation vocabulary outranks volunteering, etc.).
type fallbackRule struct {
	name    string
	matches func(lower string) bool
	mission model.Mission
	explain string
}

func containsAny(terms ...string) func(string) bool {
	return func(lower string) bool {
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return true
			}
		}
		return false
	}
}

var fallbackRules = []fallbackRule{
	{
		name: "nird",
		matches: containsAny(
			"nird", "linux", "logiciel libre", "open source",
			"reconditionnement", "big tech", "résistance", "village",
		),
		mission: model.MissionInfo,
		explain: `🏘️ Tu t'intéresses à notre démarche NIRD ! La mission "Demander des Infos" te permettra d'en apprendre plus sur la résistance numérique et les logiciels libres.`,
	},
	{
		name: "don",
		matches: containsAny(
			"don", "argent", "financer", "euro", "€", "payer",
			"contribuer financ", "mécène", "sponsor", "soutien financier",
			"donation", "donate", "matériel",
		),
		mission: model.MissionDon,
		explain: `💎 Tu souhaites soutenir le Village Résistant ! Ton don aidera à financer le reconditionnement de matériel et le déploiement de Linux dans les écoles 🐧`,
	},
	{
		name: "benevole",
		matches: containsAny(
			"bénévol", "participer", "rejoindre", "équipe", "volontaire",
			"volunteer", "membre", "engager", "impliquer", "nuit de l'info",
			"guilde", "faire partie", "aider", "stage", "développeur",
			"designer", "compétence", "école", "installer",
		),
		mission: model.MissionBenevole,
		explain: `🛡️ Excellent ! Tu veux rejoindre la résistance numérique ! La Guilde des Bénévoles t'attend pour aider les écoles à adopter Linux et les logiciels libres 🐧`,
	},
	{
		name: "info",
		matches: containsAny(
			"question", "savoir", "information", "renseignement",
			"en savoir plus", "comment", "qu'est", "c'est quoi", "expliquer",
			"détail", "projet", "activité", "fonctionnement", "exposé",
			"recherche",
		),
		mission: model.MissionInfo,
		explain: `❓ Tu cherches des informations sur le Village Résistant ! Découvre comment les écoles peuvent s'affranchir des Big Tech 🏘️`,
	},
	{
		name: "contact",
		matches: containsAny(
			"contact", "écrire", "message", "parler", "joindre",
			"partenariat", "collaboration", "entreprise", "organiser",
			"proposer", "problème", "suggestion",
		),
		mission: model.MissionContact,
		explain: `📞 Tu souhaites établir le contact avec le Village Résistant ! Notre équipe NIRD te répondra pour discuter de ta demande 🏘️`,
	},
	{
		// Self-description: a first-person marker plus an availability or
		// skill marker reads as an offer to help.
		name: "self-description",
		matches: func(lower string) bool {
			return containsAny("je suis", "j'ai", "i am", "i have")(lower) &&
				containsAny("temps", "disponible", "compétent", "available", "skill")(lower)
		},
		mission: model.MissionBenevole,
		explain: `💪 Super ! Tu as des compétences à offrir au Village Résistant. Rejoins notre Guilde pour aider les écoles à adopter le numérique libre !`,
	},
	{
		name:    "greeting",
		matches: containsAny("bonjour", "salut", "hello", "coucou", "hi "),
		mission: model.MissionContact,
		explain: `👋 Bienvenue au Village Numérique Résistant ! Établis le contact pour rejoindre notre communauté NIRD 🏘️`,
	},
}

// Defaults when no rule matches: a long utterance reads as something worth a
// conversation, a short one as a lookup.
const (
	longUtteranceLen = 100

	longDefaultExplain  = `📡 J'ai analysé ta demande détaillée ! Contacte le Village Résistant pour nous expliquer ton projet ou besoin 🏘️`
	shortDefaultExplain = `🔍 Découvre la démarche NIRD et comment le Village Résistant aide les écoles à adopter un numérique libre et durable ! 🌱`
)

// Fallback is the deterministic local classifier: case-insensitive
// keyword rules evaluated first-match-wins, then a length-based default.
// Total over every input — the mission is always one of the four values and
// the explanation is never empty.
func Fallback(utterance string) Result {
	lower := strings.ToLower(utterance)

	for _, rule := range fallbackRules {
		if rule.matches(lower) {
			return Result{Mission: rule.mission, Explanation: rule.explain}
		}
	}

	if len(utterance) > longUtteranceLen {
		return Result{Mission: model.MissionContact, Explanation: longDefaultExplain}
	}
	return Result{Mission: model.MissionInfo, Explanation: shortDefaultExplain}
}
