package handler_test

import (
	"context"
	"errors"
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

var _ = Describe("UpdatesHandler", func() {
	var (
		router *gin.Engine
		svc    *mockUpdatesService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockUpdatesService{}

		h := handler.NewUpdatesHandler(svc)
		g := router.Group("/api", asUser(&model.User{ID: 1, Username: "alice"}))
		g.GET("/conversations/updates", h.Conversations)
		g.GET("/messages/updates", h.Messages)
		g.GET("/expert-queue/updates", h.ExpertQueue)
	})

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("passes the parsed since through", func() {
		var got *time.Time
		svc.conversationsFn = func(_ context.Context, _ *model.User, since *time.Time) ([]service.ConversationView, error) {
			got = since
			return nil, nil
		}

		w := get("/api/conversations/updates?since=2024-03-01T09:00:00.5Z")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got).NotTo(BeNil())
		Expect(got.Equal(time.Date(2024, 3, 1, 9, 0, 0, 500000000, time.UTC))).To(BeTrue())
		Expect(w.Body.String()).To(Equal("[]"))
	})

	It("leaves since nil when it is absent", func() {
		called := false
		svc.messagesFn = func(_ context.Context, _ *model.User, since *time.Time) ([]model.Message, error) {
			called = true
			Expect(since).To(BeNil())
			return nil, nil
		}

		w := get("/api/messages/updates")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(called).To(BeTrue())
	})

	It("rejects an unparseable since", func() {
		w := get("/api/messages/updates?since=yesterday")

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"Invalid since parameter"}`))
	})

	It("maps a missing expert profile to 403 on queue updates", func() {
		svc.expertQueueFn = func(context.Context, *model.User, *time.Time) (*service.ExpertQueue, error) {
			return nil, service.ErrExpertProfileRequired
		}

		w := get("/api/expert-queue/updates")

		Expect(w.Code).To(Equal(http.StatusForbidden))
	})
})

var _ = Describe("HealthHandler", func() {
	serve := func(h *handler.HealthHandler) *httptest.ResponseRecorder {
		router := gin.New()
		router.GET("/health", h.Health)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("reports ok without a database", func() {
		w := serve(handler.NewHealthHandler(nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"status":"ok"`))
		Expect(w.Body.String()).To(ContainSubstring(`"timestamp"`))
	})

	It("reports unavailable when the database is down", func() {
		w := serve(handler.NewHealthHandler(mockPinger{err: errors.New("refused")}))

		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})
})
