package chat

import "strings"

const personaPrompt = `Tu es Axolotl 🦎, le guide du Nexus Connecté, le portail du Village Numérique Résistant (démarche NIRD : Numérique Inclusif, Responsable et Durable).
Tu réponds en français, sur un ton chaleureux et légèrement épique, avec quelques emojis.
Tu orientes les visiteurs vers les quatre missions du Portail d'Intention : Établir le Contact, Offrir un Don, Rejoindre la Guilde des Bénévoles, Demander des Infos.
Tes réponses font 2-3 phrases maximum.`

// replyRule pairs keyword markers with a canned reply. Rules run in order
// against the latest user message, first match wins.
type replyRule struct {
	name    string
	markers []string
	reply   string
}

var replyRules = []replyRule{
	{
		name:    "greeting",
		markers: []string{"bonjour", "salut", "hello"},
		reply:   "Salutations, voyageur ! 🚀 Bienvenue dans le Nexus Connecté. Je suis Axolotl 🦎, ton guide. Comment puis-je t'aider ?",
	},
	{
		name:    "don",
		markers: []string{"don", "donner", "contribution"},
		reply:   "Tu souhaites offrir un Don de Ressources ? 💎 C'est une noble quête ! Clique sur 'Offrir un Don' dans le Portail d'Intention pour contribuer à notre cause. Chaque don nous aide à financer la Nuit de l'Info ! 🙏",
	},
	{
		name:    "benevole",
		markers: []string{"bénévol", "guilde", "rejoindre"},
		reply:   "Tu veux rejoindre la Guilde des Bénévoles ? 🛡️ Excellent choix, guerrier du code ! Sélectionne 'Rejoindre la Guilde' dans le Portail et partage tes compétences. Ensemble, nous accomplirons de grandes missions ! ⚔️",
	},
	{
		name:    "contact",
		markers: []string{"contact", "message", "écrire"},
		reply:   "Pour établir le contact avec nos Agents de Support 🕵️, choisis 'Établir le Contact' dans le Portail d'Intention. Nous te répondrons sous peu via les canaux cryptés ! 📡",
	},
	{
		name:    "info",
		markers: []string{"info", "information", "question"},
		reply:   "Tu cherches des informations sur le Nexus ? 🔍 Sélectionne 'Demander des Infos' dans le Portail pour poser tes questions. Nos analystes sont prêts à t'éclairer ! ✨",
	},
	{
		name:    "evenement",
		markers: []string{"nuit", "événement"},
		reply:   "La Nuit de l'Info 🌃 est un événement épique où les Chevaliers du Code se rassemblent pour relever des défis ! Notre association y participe activement. Veux-tu en savoir plus ou nous rejoindre ? 🚀",
	},
	{
		name:    "merci",
		markers: []string{"merci", "thanks"},
		reply:   "C'est moi qui te remercie, voyageur ! 🙏 Que la puissance du code t'accompagne dans tes quêtes. N'hésite pas si tu as d'autres questions ! ⚡",
	},
	{
		name:    "aide",
		markers: []string{"aide", "help"},
		reply:   "Je suis là pour te guider ! 🦎 Tu peux :\n• 📞 Établir le Contact\n• 💰 Offrir un Don\n• 🛡️ Rejoindre la Guilde\n• ❓ Demander des Infos\n\nQuelle mission t'intéresse ?",
	},
}

// defaultReplies are generic redirects used when no category matches;
// one is picked at random.
var defaultReplies = []string{
	"Intéressante question, voyageur ! 🤔 Pour mieux te guider, utilise le Portail d'Intention ci-dessus. Choisis ta mission et je t'accompagnerai ! 🚀",
	"Les flux de données me suggèrent de t'orienter vers le Portail d'Intention ! 🌐 Là, tu pourras choisir ta voie : Contact, Don, Bénévolat ou Informations. Que la force du code soit avec toi ! ⚡",
	"Ah, une énigme que même les anciens circuits n'avaient pas prévue ! 🦎 Explore le Portail d'Intention pour découvrir comment contribuer au Nexus. Chaque action compte ! ✨",
}

func matchReplyRule(lower string) (string, bool) {
	for _, rule := range replyRules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return rule.reply, true
			}
		}
	}
	return "", false
}
