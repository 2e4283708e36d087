package security

import (
	"regexp"
	"strconv"
	"strings"

	"nird.dev/outreach/internal/model"
)

// Verdict is the outcome of validating one submission payload.
// Valid is true iff Errors is empty.
type Verdict struct {
	Valid  bool
	Errors []string
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+33|0)[1-9](\d{2}){4}$`)
)

// Free-text fields checked for spam, in order; the first hit wins.
var spamCheckedFields = []string{"message", "motivation", "questionSpecifique"}

// ValidateEmail checks the standard local@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone checks the French phone format, ignoring spaces.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// Validate runs the mission-aware checks over a submission payload.
// A filled honeypot rejects outright; ordinary errors accumulate.
func Validate(data map[string]any, mission model.Mission) Verdict {
	// Honeypot: the hidden "website" field is invisible to humans, so any
	// value means a bot filled the form. Reported alone, before anything else.
	if website := stringField(data, "website"); website != "" {
		return Verdict{Valid: false, Errors: []string{"Détection de bot - soumission rejetée"}}
	}

	var errs []string

	if nom := stringField(data, "nom"); len(strings.TrimSpace(nom)) < 2 {
		errs = append(errs, "Le nom est requis (minimum 2 caractères)")
	}

	if email := stringField(data, "email"); !ValidateEmail(email) {
		errs = append(errs, "Email invalide")
	}

	for _, field := range spamCheckedFields {
		if text := stringField(data, field); text != "" && IsSpam(text) {
			errs = append(errs, "Contenu suspect détecté")
			break
		}
	}

	switch mission {
	case model.MissionContact:
		if sujet := stringField(data, "sujet"); len(strings.TrimSpace(sujet)) < 3 {
			errs = append(errs, "Le sujet est requis")
		}
		if message := stringField(data, "message"); len(strings.TrimSpace(message)) < 10 {
			errs = append(errs, "Le message doit contenir au moins 10 caractères")
		}

	case model.MissionDon:
		if _, ok := ResolveAmount(data); !ok {
			errs = append(errs, "Le montant du don est requis")
		}

	case model.MissionBenevole:
		telephone := stringField(data, "telephone")
		if telephone == "" {
			errs = append(errs, "Le téléphone est requis")
		} else if !ValidatePhone(telephone) {
			errs = append(errs, "Numéro de téléphone invalide")
		}
		if competences, ok := data["competences"].([]any); !ok || len(competences) == 0 {
			errs = append(errs, "Sélectionnez au moins une compétence")
		}
		if motivation := stringField(data, "motivation"); len(strings.TrimSpace(motivation)) < 20 {
			errs = append(errs, "Décrivez votre motivation (minimum 20 caractères)")
		}

	case model.MissionInfo:
		if typeInfo := stringField(data, "typeInfo"); typeInfo == "" {
			errs = append(errs, "Sélectionnez un type d'information")
		}
		if question := stringField(data, "questionSpecifique"); len(strings.TrimSpace(question)) < 10 {
			errs = append(errs, "Posez votre question (minimum 10 caractères)")
		}
	}

	return Verdict{Valid: len(errs) == 0, Errors: errs}
}

// ResolveAmount extracts the donation amount: "montant" wins over
// "montantPersonnalise". Numbers must be at least 1.
func ResolveAmount(data map[string]any) (float64, bool) {
	for _, field := range []string{"montant", "montantPersonnalise"} {
		switch v := data[field].(type) {
		case float64:
			if v >= 1 {
				return v, true
			}
		case int:
			if v >= 1 {
				return float64(v), true
			}
		case string:
			if amount, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && amount >= 1 {
				return amount, true
			}
		}
	}
	return 0, false
}

func stringField(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}
