package security_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"nird.dev/outreach/internal/model"
	"nird.dev/outreach/internal/security"
)

func contactPayload() map[string]any {
	return map[string]any{
		"nom":     "Jean Dupont",
		"email":   "jean@example.com",
		"sujet":   "Partenariat",
		"message": "Bonjour, je souhaite organiser un atelier Linux dans notre école.",
	}
}

var _ = Describe("ValidateEmail", func() {
	DescribeTable("email shapes",
		func(email string, valid bool) {
			Expect(security.ValidateEmail(email)).To(Equal(valid))
		},
		Entry("standard address", "jean@example.com", true),
		Entry("subdomain", "jean@mail.example.fr", true),
		Entry("missing at sign", "jean.example.com", false),
		Entry("missing tld", "jean@example", false),
		Entry("contains whitespace", "jean dupont@example.com", false),
		Entry("empty", "", false),
	)
})

var _ = Describe("ValidatePhone", func() {
	DescribeTable("french phone formats",
		func(phone string, valid bool) {
			Expect(security.ValidatePhone(phone)).To(Equal(valid))
		},
		Entry("compact national", "0612345678", true),
		Entry("spaced national", "06 12 34 56 78", true),
		Entry("international prefix", "+33612345678", true),
		Entry("spaced international", "+33 6 12 34 56 78", true),
		Entry("leading zero-zero", "0012345678", false),
		Entry("too short", "061234567", false),
		Entry("too long", "06123456789", false),
		Entry("letters", "06abcdefgh", false),
		Entry("empty", "", false),
	)
})

var _ = Describe("Validate", func() {
	Describe("honeypot", func() {
		It("rejects outright when the hidden field is filled", func() {
			data := contactPayload()
			data["website"] = "http://spam.example.com"

			verdict := security.Validate(data, model.MissionContact)

			Expect(verdict.Valid).To(BeFalse())
			Expect(verdict.Errors).To(Equal([]string{"Détection de bot - soumission rejetée"}))
		})

		It("reports the bot error alone even when other fields are invalid", func() {
			verdict := security.Validate(map[string]any{"website": "x"}, model.MissionContact)

			Expect(verdict.Errors).To(HaveLen(1))
		})
	})

	Describe("common fields", func() {
		It("accepts a complete contact payload", func() {
			verdict := security.Validate(contactPayload(), model.MissionContact)

			Expect(verdict.Valid).To(BeTrue())
			Expect(verdict.Errors).To(BeEmpty())
		})

		It("requires a name of at least 2 characters", func() {
			data := contactPayload()
			data["nom"] = " J "

			verdict := security.Validate(data, model.MissionContact)

			Expect(verdict.Errors).To(ContainElement("Le nom est requis (minimum 2 caractères)"))
		})

		It("requires a well-formed email", func() {
			data := contactPayload()
			data["email"] = "pas-un-email"

			verdict := security.Validate(data, model.MissionContact)

			Expect(verdict.Errors).To(ContainElement("Email invalide"))
		})

		It("rejects an absent email", func() {
			data := contactPayload()
			delete(data, "email")

			verdict := security.Validate(data, model.MissionContact)

			Expect(verdict.Errors).To(ContainElement("Email invalide"))
		})

		It("flags spam content once across free-text fields", func() {
			data := contactPayload()
			data["message"] = "winner! free money at https://example.com https://example.org https://example.net"

			verdict := security.Validate(data, model.MissionContact)

			Expect(verdict.Errors).To(ContainElement("Contenu suspect détecté"))
		})

		It("accumulates errors instead of stopping at the first", func() {
			verdict := security.Validate(map[string]any{}, model.MissionContact)

			Expect(verdict.Valid).To(BeFalse())
			Expect(len(verdict.Errors)).To(BeNumerically(">=", 3))
		})
	})

	Describe("contact mission", func() {
		It("requires a subject of at least 3 characters", func() {
			data := contactPayload()
			data["sujet"] = "ab"

			verdict := security.Validate(data, model.MissionContact)

			Expect(verdict.Errors).To(ContainElement("Le sujet est requis"))
		})

		It("requires a message of at least 10 characters", func() {
			data := contactPayload()
			data["message"] = "trop bref"

			verdict := security.Validate(data, model.MissionContact)

			Expect(verdict.Errors).To(ContainElement("Le message doit contenir au moins 10 caractères"))
		})
	})

	Describe("donation mission", func() {
		It("accepts a numeric amount", func() {
			verdict := security.Validate(map[string]any{
				"nom":     "Jean Dupont",
				"email":   "jean@example.com",
				"montant": float64(50),
			}, model.MissionDon)

			Expect(verdict.Valid).To(BeTrue())
		})

		It("accepts a custom amount given as a string", func() {
			verdict := security.Validate(map[string]any{
				"nom":                 "Jean Dupont",
				"email":               "jean@example.com",
				"montantPersonnalise": "25.50",
			}, model.MissionDon)

			Expect(verdict.Valid).To(BeTrue())
		})

		It("requires an amount", func() {
			verdict := security.Validate(map[string]any{
				"nom":   "Jean Dupont",
				"email": "jean@example.com",
			}, model.MissionDon)

			Expect(verdict.Errors).To(ContainElement("Le montant du don est requis"))
		})

		It("rejects an amount below one", func() {
			verdict := security.Validate(map[string]any{
				"nom":     "Jean Dupont",
				"email":   "jean@example.com",
				"montant": 0.5,
			}, model.MissionDon)

			Expect(verdict.Errors).To(ContainElement("Le montant du don est requis"))
		})
	})

	Describe("volunteer mission", func() {
		benevolePayload := func() map[string]any {
			return map[string]any{
				"nom":         "Jean Dupont",
				"email":       "jean@example.com",
				"telephone":   "06 12 34 56 78",
				"competences": []any{"linux", "pédagogie"},
				"motivation":  "Je veux aider les écoles à migrer vers le logiciel libre.",
			}
		}

		It("accepts a complete volunteer payload", func() {
			verdict := security.Validate(benevolePayload(), model.MissionBenevole)

			Expect(verdict.Valid).To(BeTrue())
		})

		It("requires a phone number", func() {
			data := benevolePayload()
			delete(data, "telephone")

			verdict := security.Validate(data, model.MissionBenevole)

			Expect(verdict.Errors).To(ContainElement("Le téléphone est requis"))
		})

		It("rejects a malformed phone number", func() {
			data := benevolePayload()
			data["telephone"] = "12345"

			verdict := security.Validate(data, model.MissionBenevole)

			Expect(verdict.Errors).To(ContainElement("Numéro de téléphone invalide"))
		})

		It("requires at least one skill", func() {
			data := benevolePayload()
			data["competences"] = []any{}

			verdict := security.Validate(data, model.MissionBenevole)

			Expect(verdict.Errors).To(ContainElement("Sélectionnez au moins une compétence"))
		})

		It("requires a motivation of at least 20 characters", func() {
			data := benevolePayload()
			data["motivation"] = "je veux aider"

			verdict := security.Validate(data, model.MissionBenevole)

			Expect(verdict.Errors).To(ContainElement("Décrivez votre motivation (minimum 20 caractères)"))
		})
	})

	Describe("info mission", func() {
		It("accepts a complete info payload", func() {
			verdict := security.Validate(map[string]any{
				"nom":                "Jean Dupont",
				"email":              "jean@example.com",
				"typeInfo":           "ateliers",
				"questionSpecifique": "Comment organiser un atelier de reconditionnement ?",
			}, model.MissionInfo)

			Expect(verdict.Valid).To(BeTrue())
		})

		It("requires an info type", func() {
			verdict := security.Validate(map[string]any{
				"nom":                "Jean Dupont",
				"email":              "jean@example.com",
				"questionSpecifique": "Comment organiser un atelier ?",
			}, model.MissionInfo)

			Expect(verdict.Errors).To(ContainElement("Sélectionnez un type d'information"))
		})

		It("requires a question of at least 10 characters", func() {
			verdict := security.Validate(map[string]any{
				"nom":                "Jean Dupont",
				"email":              "jean@example.com",
				"typeInfo":           "ateliers",
				"questionSpecifique": "linux ?",
			}, model.MissionInfo)

			Expect(verdict.Errors).To(ContainElement("Posez votre question (minimum 10 caractères)"))
		})
	})
})

var _ = Describe("ResolveAmount", func() {
	DescribeTable("amount resolution",
		func(data map[string]any, expected float64, ok bool) {
			amount, resolved := security.ResolveAmount(data)
			Expect(resolved).To(Equal(ok))
			if ok {
				Expect(amount).To(Equal(expected))
			}
		},
		Entry("float montant", map[string]any{"montant": float64(50)}, float64(50), true),
		Entry("int montant", map[string]any{"montant": 20}, float64(20), true),
		Entry("string montant", map[string]any{"montant": " 35 "}, float64(35), true),
		Entry("montant wins over montantPersonnalise",
			map[string]any{"montant": float64(10), "montantPersonnalise": float64(99)}, float64(10), true),
		Entry("falls back to montantPersonnalise",
			map[string]any{"montantPersonnalise": "42"}, float64(42), true),
		Entry("below one", map[string]any{"montant": 0.99}, float64(0), false),
		Entry("unparseable string", map[string]any{"montant": "cinquante"}, float64(0), false),
		Entry("absent", map[string]any{}, float64(0), false),
	)
})
