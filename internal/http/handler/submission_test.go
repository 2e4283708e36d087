package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"nird.dev/outreach/internal/http/handler"
	"nird.dev/outreach/internal/model"
	"nird.dev/outreach/internal/service"
)

var _ = Describe("SubmissionHandler", func() {
	var (
		router *gin.Engine
		svc    *mockSubmissionService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockSubmissionService{}
		h := handler.NewSubmissionHandler(svc)
		router.POST("/submissions", h.Submit)
	})

	post := func(body string, headers map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/submissions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns 200 with the acknowledgment on success", func() {
		montant := float64(50)
		svc.submitFn = func(_ context.Context, _, mission string, data map[string]any) service.SubmissionResult {
			Expect(mission).To(Equal("don"))
			Expect(data).To(HaveKeyWithValue("nom", "Jean Dupont"))
			return service.SubmissionResult{
				Status:    service.SubmissionAccepted,
				Reference: "NX-ABC123-XY9Z",
				Mission:   model.MissionDon,
				Nom:       "Jean Dupont",
				Montant:   &montant,
			}
		}

		w := post(`{"mission":"don","data":{"nom":"Jean Dupont","email":"jean@example.com","montant":50}}`, nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["success"]).To(BeTrue())
		Expect(resp["message"]).To(Equal("Soumission réussie ! 🎉"))
		Expect(resp["reference"]).To(Equal("NX-ABC123-XY9Z"))
		Expect(resp["mission"]).To(Equal("don"))
		Expect(resp["nom"]).To(Equal("Jean Dupont"))
		Expect(resp["montant"]).To(Equal(float64(50)))
	})

	It("derives the client id from the first forwarded-for hop", func() {
		var gotClientID string
		svc.submitFn = func(_ context.Context, clientID, _ string, _ map[string]any) service.SubmissionResult {
			gotClientID = clientID
			return service.SubmissionResult{Status: service.SubmissionAccepted}
		}

		post(`{"mission":"contact","data":{}}`, map[string]string{
			"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
		})

		Expect(gotClientID).To(Equal("203.0.113.7"))
	})

	It("returns 429 with throttling headers when rate limited", func() {
		svc.submitFn = func(_ context.Context, _, _ string, _ map[string]any) service.SubmissionResult {
			return service.SubmissionResult{
				Status:     service.SubmissionThrottled,
				RetryAfter: 30 * time.Second,
				Remaining:  0,
			}
		}

		w := post(`{"mission":"contact","data":{}}`, nil)

		Expect(w.Code).To(Equal(http.StatusTooManyRequests))
		Expect(w.Header().Get("Retry-After")).To(Equal("30"))
		Expect(w.Header().Get("X-RateLimit-Remaining")).To(Equal("0"))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["success"]).To(BeFalse())
		Expect(resp["error"]).To(Equal("Trop de requêtes. Veuillez patienter quelques instants. ⏳"))
		Expect(resp["retryAfter"]).To(Equal(float64(30)))
	})

	It("returns 400 when the pipeline reports missing data", func() {
		svc.submitFn = func(_ context.Context, _, _ string, _ map[string]any) service.SubmissionResult {
			return service.SubmissionResult{Status: service.SubmissionMissingData}
		}

		w := post(`{"mission":""}`, nil)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["error"]).To(Equal("Données manquantes"))
	})

	It("returns 400 with the error list on validation failure", func() {
		svc.submitFn = func(_ context.Context, _, _ string, _ map[string]any) service.SubmissionResult {
			return service.SubmissionResult{
				Status: service.SubmissionInvalid,
				Errors: []string{"Email invalide", "Le sujet est requis"},
			}
		}

		w := post(`{"mission":"contact","data":{"nom":"Jean"}}`, nil)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["error"]).To(Equal("Validation échouée"))
		Expect(resp["errors"]).To(ConsistOf("Email invalide", "Le sujet est requis"))
	})

	It("returns 400 on malformed JSON", func() {
		w := post(`{"mission":`, nil)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["error"]).To(Equal("Données manquantes"))
	})
})
