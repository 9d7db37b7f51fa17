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

var _ = Describe("ConversationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockConversationService
		alice  *model.User
		view   service.ConversationView
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockConversationService{}
		alice = &model.User{ID: 1, Username: "alice"}
		created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		expertID := int64(2)
		expertName := "bob"
		view = service.ConversationView{
			Conversation: model.Conversation{
				ID:                     1843007354399936512,
				Title:                  "Printer on fire",
				Status:                 model.ConversationStatusActive,
				InitiatorID:            alice.ID,
				InitiatorUsername:      "alice",
				AssignedExpertID:       &expertID,
				AssignedExpertUsername: &expertName,
				CreatedAt:              created,
				UpdatedAt:              created,
			},
			UnreadCount: 2,
		}

		h := handler.NewConversationHandler(svc)
		g := router.Group("/conversations", asUser(alice))
		g.GET("", h.List)
		g.GET("/:conversation_id", h.Get)
		g.POST("", h.Create)
		g.POST("/:conversation_id/auto_assign", h.AutoAssign)
	})

	It("lists conversations with string ids and camelCase keys", func() {
		svc.listFn = func(_ context.Context, caller *model.User) ([]service.ConversationView, error) {
			Expect(caller.ID).To(Equal(alice.ID))
			return []service.ConversationView{view}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/conversations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
		Expect(resp[0]["id"]).To(Equal("1843007354399936512"))
		Expect(resp[0]["questionerId"]).To(Equal("1"))
		Expect(resp[0]["assignedExpertId"]).To(Equal("2"))
		Expect(resp[0]["assignedExpertUsername"]).To(Equal("bob"))
		Expect(resp[0]["unreadCount"]).To(BeNumerically("==", 2))
		Expect(resp[0]["summary"]).To(BeNil())
		Expect(resp[0]["lastMessageAt"]).To(BeNil())
	})

	It("returns an empty array rather than null", func() {
		req := httptest.NewRequest(http.MethodGet, "/conversations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("[]"))
	})

	It("returns 404 for conversations the caller cannot see", func() {
		req := httptest.NewRequest(http.MethodGet, "/conversations/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"Conversation not found"}`))
	})

	It("returns 404 for malformed ids without calling the service", func() {
		svc.getFn = func(context.Context, *model.User, int64) (*service.ConversationView, error) {
			Fail("service should not be called")
			return nil, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/conversations/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("creates a conversation", func() {
		svc.createFn = func(_ context.Context, initiator *model.User, title string) (*service.ConversationView, error) {
			Expect(initiator.ID).To(Equal(alice.ID))
			Expect(title).To(Equal("Printer on fire"))
			return &view, nil
		}

		body, _ := json.Marshal(map[string]string{"title": "Printer on fire"})
		req := httptest.NewRequest(http.MethodPost, "/conversations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Body.String()).To(ContainSubstring(`"title":"Printer on fire"`))
	})

	It("returns 422 for a blank title", func() {
		svc.createFn = func(context.Context, *model.User, string) (*service.ConversationView, error) {
			return nil, &service.ValidationError{Messages: []string{"Title can't be blank"}}
		}

		req := httptest.NewRequest(http.MethodPost, "/conversations", bytes.NewBufferString(`{"title":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		Expect(w.Body.String()).To(MatchJSON(`{"errors":["Title can't be blank"]}`))
	})

	Describe("AutoAssign", func() {
		It("returns 202 once the job is queued", func() {
			var got int64
			svc.requestAssignmentFn = func(_ context.Context, _ *model.User, conversationID int64) error {
				got = conversationID
				return nil
			}

			req := httptest.NewRequest(http.MethodPost, "/conversations/7/auto_assign", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusAccepted))
			Expect(got).To(Equal(int64(7)))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["success"]).To(BeTrue())
			Expect(resp["message"]).To(ContainSubstring("Auto-assignment job has been queued"))
		})

		It("returns 403 for non-initiators", func() {
			svc.requestAssignmentFn = func(context.Context, *model.User, int64) error {
				return service.ErrNotInitiator
			}

			req := httptest.NewRequest(http.MethodPost, "/conversations/7/auto_assign", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})
})
