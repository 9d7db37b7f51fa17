package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
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

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
		alice  *model.User
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockAuthService{}
		alice = &model.User{ID: 1, Username: "alice", CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
		h := handler.NewAuthHandler(svc)
		router.POST("/auth/register", h.Register)
		router.POST("/auth/login", h.Login)
		authed := router.Group("/auth", asUser(alice))
		authed.POST("/logout", h.Logout)
		authed.POST("/refresh", h.Refresh)
		authed.GET("/me", h.Me)
	})

	post := func(path string, body any) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Register", func() {
		It("returns 201 with the user and token", func() {
			svc.registerFn = func(_ context.Context, username, password, confirmation string) (*service.Session, error) {
				Expect(username).To(Equal("alice"))
				Expect(password).To(Equal("secret123"))
				Expect(confirmation).To(Equal("secret123"))
				return &service.Session{User: alice, Token: "jwt"}, nil
			}

			w := post("/auth/register", map[string]any{"user": map[string]string{
				"username": "alice", "password": "secret123", "password_confirmation": "secret123",
			}})

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["token"]).To(Equal("jwt"))
			user := resp["user"].(map[string]any)
			Expect(user["id"]).To(Equal("1"))
			Expect(user["username"]).To(Equal("alice"))
			Expect(user["created_at"]).To(Equal("2024-03-01T09:00:00Z"))
		})

		It("returns 422 with every validation message", func() {
			svc.registerFn = func(context.Context, string, string, string) (*service.Session, error) {
				return nil, &service.ValidationError{Messages: []string{"Username can't be blank", "Password is too short (minimum is 6 characters)"}}
			}

			w := post("/auth/register", map[string]any{"user": map[string]string{}})

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			var resp map[string][]string
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["errors"]).To(HaveLen(2))
		})

		It("returns 400 on malformed json", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Login", func() {
		It("returns 401 for bad credentials", func() {
			svc.loginFn = func(context.Context, string, string) (*service.Session, error) {
				return nil, service.ErrInvalidCredentials
			}

			w := post("/auth/login", map[string]any{"user": map[string]string{"username": "alice", "password": "x"}})

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"Invalid username or password"}`))
		})

		It("returns 500 and hides internal failures", func() {
			svc.loginFn = func(context.Context, string, string) (*service.Session, error) {
				return nil, errors.New("db down")
			}

			w := post("/auth/login", map[string]any{"user": map[string]string{"username": "alice", "password": "x"}})

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("db down"))
		})
	})

	It("acknowledges logout", func() {
		w := post("/auth/logout", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"message":"Logged out successfully"}`))
	})

	It("refreshes the token for the current user", func() {
		svc.refreshFn = func(_ context.Context, user *model.User) (*service.Session, error) {
			return &service.Session{User: user, Token: "fresh"}, nil
		}

		w := post("/auth/refresh", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"token":"fresh"`))
	})

	It("returns the current user from me", func() {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"id":"1","username":"alice","created_at":"2024-03-01T09:00:00Z","last_active_at":null}`))
	})
})
