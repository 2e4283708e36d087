package security_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"nird.dev/outreach/internal/security"
)

var _ = Describe("Sanitize", func() {
	It("escapes angle brackets", func() {
		Expect(security.Sanitize("<script>alert(1)</script>")).To(Equal("&lt;script&gt;alert(1)&lt;&#x2F;script&gt;"))
	})

	It("escapes quotes and slashes", func() {
		Expect(security.Sanitize(`a"b'c/d`)).To(Equal("a&quot;b&#x27;c&#x2F;d"))
	})

	It("trims surrounding whitespace", func() {
		Expect(security.Sanitize("  Jean Dupont  ")).To(Equal("Jean Dupont"))
	})

	It("leaves plain text unchanged", func() {
		Expect(security.Sanitize("Jean Dupont")).To(Equal("Jean Dupont"))
	})

	It("is idempotent", func() {
		once := security.Sanitize("<b>salut</b>")
		Expect(security.Sanitize(once)).To(Equal(once))
	})

	It("preserves accented characters", func() {
		Expect(security.Sanitize("Bénévole à l'école")).To(Equal("Bénévole à l&#x27;école"))
	})
})

var _ = Describe("SanitizeFields", func() {
	It("sanitizes every string field", func() {
		out := security.SanitizeFields(map[string]any{
			"nom":     " <Jean> ",
			"message": "bonjour/au revoir",
		})
		Expect(out["nom"]).To(Equal("&lt;Jean&gt;"))
		Expect(out["message"]).To(Equal("bonjour&#x2F;au revoir"))
	})

	It("passes non-string values through unchanged", func() {
		competences := []any{"linux", "reseau"}
		out := security.SanitizeFields(map[string]any{
			"montant":     float64(50),
			"competences": competences,
			"newsletter":  true,
		})
		Expect(out["montant"]).To(Equal(float64(50)))
		Expect(out["competences"]).To(Equal(competences))
		Expect(out["newsletter"]).To(Equal(true))
	})

	It("does not mutate the input map", func() {
		in := map[string]any{"nom": "<Jean>"}
		_ = security.SanitizeFields(in)
		Expect(in["nom"]).To(Equal("<Jean>"))
	})
})

var _ = Describe("ScrubMarkup", func() {
	It("strips tags instead of escaping them", func() {
		Expect(security.ScrubMarkup("<b>Rejoins</b> la Guilde !")).To(Equal("Rejoins la Guilde !"))
	})

	It("removes script elements entirely", func() {
		Expect(security.ScrubMarkup(`avant<script>alert(1)</script>après`)).To(Equal("avantaprès"))
	})

	It("trims whitespace", func() {
		Expect(security.ScrubMarkup("  une réponse  ")).To(Equal("une réponse"))
	})
})
