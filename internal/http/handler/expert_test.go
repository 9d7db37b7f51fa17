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

	"basegraph.app/helpdesk/internal/http/handler"
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/service"
)

var _ = Describe("ExpertHandler", func() {
	var (
		router      *gin.Engine
		queue       *mockQueueService
		assignments *mockAssignmentService
		experts     *mockExpertService
		bob         *model.User
	)

	BeforeEach(func() {
		router = gin.New()
		queue = &mockQueueService{}
		assignments = &mockAssignmentService{}
		experts = &mockExpertService{}
		bob = &model.User{ID: 2, Username: "bob"}

		h := handler.NewExpertHandler(queue, assignments, experts)
		g := router.Group("/expert", asUser(bob))
		g.GET("/queue", h.Queue)
		g.POST("/conversations/:conversation_id/claim", h.Claim)
		g.POST("/conversations/:conversation_id/unclaim", h.Unclaim)
		g.GET("/profile", h.Profile)
		g.PUT("/profile", h.UpdateProfile)
		g.GET("/assignments/history", h.History)
	})

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("renders both queue lists, empty ones as arrays", func() {
		queue.expertQueueFn = func(context.Context, *model.User) (*service.ExpertQueue, error) {
			return &service.ExpertQueue{
				Waiting: []service.ConversationView{{Conversation: model.Conversation{ID: 3, Title: "VPN", Status: model.ConversationStatusWaiting}}},
			}, nil
		}

		w := serve(http.MethodGet, "/expert/queue", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string][]map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["waitingConversations"]).To(HaveLen(1))
		Expect(resp["assignedConversations"]).NotTo(BeNil())
		Expect(resp["assignedConversations"]).To(BeEmpty())
	})

	Describe("Claim", func() {
		It("returns success", func() {
			var got int64
			assignments.claimFn = func(_ context.Context, conversationID int64, expert *model.User) error {
				got = conversationID
				Expect(expert.ID).To(Equal(bob.ID))
				return nil
			}

			w := serve(http.MethodPost, "/expert/conversations/11/claim", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got).To(Equal(int64(11)))
			Expect(w.Body.String()).To(MatchJSON(`{"success":true}`))
		})

		It("returns 409 when someone else got there first", func() {
			assignments.claimFn = func(context.Context, int64, *model.User) error {
				return service.ErrAlreadyAssigned
			}

			w := serve(http.MethodPost, "/expert/conversations/11/claim", "")

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"Conversation is already assigned to an expert"}`))
		})
	})

	It("returns 403 when unclaiming someone else's conversation", func() {
		assignments.unclaimFn = func(context.Context, int64, *model.User) error {
			return service.ErrNotAssignedExpert
		}

		w := serve(http.MethodPost, "/expert/conversations/11/unclaim", "")

		Expect(w.Code).To(Equal(http.StatusForbidden))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"Current expert is not assigned to this conversation"}`))
	})

	Describe("profile", func() {
		It("returns the profile", func() {
			bio := "Networking"
			experts.profileFn = func(context.Context, *model.User) (*model.ExpertProfile, error) {
				return &model.ExpertProfile{ID: 20, UserID: bob.ID, Bio: &bio, KnowledgeBaseLinks: []string{"https://kb"}}, nil
			}

			w := serve(http.MethodGet, "/expert/profile", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"id":"20","bio":"Networking","knowledgeBaseLinks":["https://kb"],"faq":[]}`))
		})

		It("returns 403 without a profile", func() {
			w := serve(http.MethodGet, "/expert/profile", "")

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("passes the wrapped update through", func() {
			experts.updateProfileFn = func(_ context.Context, _ *model.User, update service.ProfileUpdate) (*model.ExpertProfile, error) {
				Expect(*update.Bio).To(Equal("Printers"))
				Expect(update.KnowledgeBaseLinks).To(Equal([]string{"https://kb/printers"}))
				Expect(update.FAQ).To(Equal([]model.FAQEntry{{Question: "Paper jam?", Answer: "Open tray 2."}}))
				return &model.ExpertProfile{ID: 20, Bio: update.Bio, KnowledgeBaseLinks: update.KnowledgeBaseLinks, FAQ: update.FAQ}, nil
			}

			w := serve(http.MethodPut, "/expert/profile", `{"expert_profile":{"bio":"Printers","knowledge_base_links":["https://kb/printers"],"faq":[{"question":"Paper jam?","answer":"Open tray 2."}]}}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"question":"Paper jam?"`))
		})

		It("returns 422 for invalid faq entries", func() {
			experts.updateProfileFn = func(context.Context, *model.User, service.ProfileUpdate) (*model.ExpertProfile, error) {
				return nil, &service.ValidationError{Messages: []string{"Faq entry 1 must have a question and an answer"}}
			}

			w := serve(http.MethodPut, "/expert/profile", `{"expert_profile":{"faq":[{"question":"","answer":""}]}}`)

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	It("renders assignment history", func() {
		resolved := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
		experts.historyFn = func(context.Context, *model.User) ([]model.ExpertAssignment, error) {
			return []model.ExpertAssignment{{
				ID: 5, ConversationID: 11, ExpertProfileID: 20,
				Status:     model.AssignmentStatusResolved,
				AssignedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
				ResolvedAt: &resolved,
			}}, nil
		}

		w := serve(http.MethodGet, "/expert/assignments/history", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
		Expect(resp[0]["conversationId"]).To(Equal("11"))
		Expect(resp[0]["expertId"]).To(Equal("20"))
		Expect(resp[0]["status"]).To(Equal("resolved"))
		Expect(resp[0]["resolvedAt"]).To(Equal("2024-03-02T10:00:00Z"))
		Expect(resp[0]["rating"]).To(BeNil())
	})
})
