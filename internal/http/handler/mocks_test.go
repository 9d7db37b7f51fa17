package handler_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"basegraph.app/helpdesk/internal/http/middleware"
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/service"
)

// asUser stands in for RequireAuth.
func asUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

type mockAuthService struct {
	registerFn     func(ctx context.Context, username, password, confirmation string) (*service.Session, error)
	loginFn        func(ctx context.Context, username, password string) (*service.Session, error)
	refreshFn      func(ctx context.Context, user *model.User) (*service.Session, error)
	authenticateFn func(ctx context.Context, token string) (*model.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, password, confirmation string) (*service.Session, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, username, password, confirmation)
	}
	return nil, nil
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*service.Session, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return nil, nil
}

func (m *mockAuthService) Refresh(ctx context.Context, user *model.User) (*service.Session, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx, user)
	}
	return nil, nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	return nil, service.ErrInvalidToken
}

type mockConversationService struct {
	createFn            func(ctx context.Context, initiator *model.User, title string) (*service.ConversationView, error)
	listFn              func(ctx context.Context, caller *model.User) ([]service.ConversationView, error)
	getFn               func(ctx context.Context, caller *model.User, conversationID int64) (*service.ConversationView, error)
	requestAssignmentFn func(ctx context.Context, caller *model.User, conversationID int64) error
}

func (m *mockConversationService) Create(ctx context.Context, initiator *model.User, title string) (*service.ConversationView, error) {
	if m.createFn != nil {
		return m.createFn(ctx, initiator, title)
	}
	return nil, nil
}

func (m *mockConversationService) List(ctx context.Context, caller *model.User) ([]service.ConversationView, error) {
	if m.listFn != nil {
		return m.listFn(ctx, caller)
	}
	return nil, nil
}

func (m *mockConversationService) Get(ctx context.Context, caller *model.User, conversationID int64) (*service.ConversationView, error) {
	if m.getFn != nil {
		return m.getFn(ctx, caller, conversationID)
	}
	return nil, service.ErrConversationNotFound
}

func (m *mockConversationService) RequestAssignment(ctx context.Context, caller *model.User, conversationID int64) error {
	if m.requestAssignmentFn != nil {
		return m.requestAssignmentFn(ctx, caller, conversationID)
	}
	return nil
}

type mockMessageService struct {
	createFn   func(ctx context.Context, sender *model.User, conversationID int64, content string) (*model.Message, error)
	listFn     func(ctx context.Context, caller *model.User, conversationID int64) ([]model.Message, error)
	markReadFn func(ctx context.Context, caller *model.User, messageID int64) error
}

func (m *mockMessageService) Create(ctx context.Context, sender *model.User, conversationID int64, content string) (*model.Message, error) {
	if m.createFn != nil {
		return m.createFn(ctx, sender, conversationID, content)
	}
	return nil, nil
}

func (m *mockMessageService) Post(context.Context, *model.Conversation, *model.User, string) (*model.Message, error) {
	return nil, nil
}

func (m *mockMessageService) List(ctx context.Context, caller *model.User, conversationID int64) ([]model.Message, error) {
	if m.listFn != nil {
		return m.listFn(ctx, caller, conversationID)
	}
	return nil, nil
}

func (m *mockMessageService) MarkRead(ctx context.Context, caller *model.User, messageID int64) error {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, caller, messageID)
	}
	return nil
}

func (m *mockMessageService) UnreadCount(context.Context, *model.Conversation, *model.User) (int64, error) {
	return 0, nil
}

type mockQueueService struct {
	expertQueueFn func(ctx context.Context, expert *model.User) (*service.ExpertQueue, error)
}

func (m *mockQueueService) ExpertQueue(ctx context.Context, expert *model.User) (*service.ExpertQueue, error) {
	if m.expertQueueFn != nil {
		return m.expertQueueFn(ctx, expert)
	}
	return &service.ExpertQueue{}, nil
}

func (m *mockQueueService) Waiting(context.Context) ([]model.Conversation, error) {
	return nil, nil
}

type mockAssignmentService struct {
	claimFn   func(ctx context.Context, conversationID int64, expert *model.User) error
	unclaimFn func(ctx context.Context, conversationID int64, expert *model.User) error
}

func (m *mockAssignmentService) AutoAssign(context.Context, int64) service.AssignResult {
	return service.AssignResult{}
}

func (m *mockAssignmentService) Claim(ctx context.Context, conversationID int64, expert *model.User) error {
	if m.claimFn != nil {
		return m.claimFn(ctx, conversationID, expert)
	}
	return nil
}

func (m *mockAssignmentService) Unclaim(ctx context.Context, conversationID int64, expert *model.User) error {
	if m.unclaimFn != nil {
		return m.unclaimFn(ctx, conversationID, expert)
	}
	return nil
}

type mockExpertService struct {
	profileFn       func(ctx context.Context, expert *model.User) (*model.ExpertProfile, error)
	updateProfileFn func(ctx context.Context, expert *model.User, update service.ProfileUpdate) (*model.ExpertProfile, error)
	historyFn       func(ctx context.Context, expert *model.User) ([]model.ExpertAssignment, error)
}

func (m *mockExpertService) Profile(ctx context.Context, expert *model.User) (*model.ExpertProfile, error) {
	if m.profileFn != nil {
		return m.profileFn(ctx, expert)
	}
	return nil, service.ErrExpertProfileRequired
}

func (m *mockExpertService) UpdateProfile(ctx context.Context, expert *model.User, update service.ProfileUpdate) (*model.ExpertProfile, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, expert, update)
	}
	return nil, nil
}

func (m *mockExpertService) History(ctx context.Context, expert *model.User) ([]model.ExpertAssignment, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, expert)
	}
	return nil, nil
}

type mockUpdatesService struct {
	conversationsFn func(ctx context.Context, user *model.User, since *time.Time) ([]service.ConversationView, error)
	messagesFn      func(ctx context.Context, user *model.User, since *time.Time) ([]model.Message, error)
	expertQueueFn   func(ctx context.Context, expert *model.User, since *time.Time) (*service.ExpertQueue, error)
}

func (m *mockUpdatesService) Conversations(ctx context.Context, user *model.User, since *time.Time) ([]service.ConversationView, error) {
	if m.conversationsFn != nil {
		return m.conversationsFn(ctx, user, since)
	}
	return nil, nil
}

func (m *mockUpdatesService) Messages(ctx context.Context, user *model.User, since *time.Time) ([]model.Message, error) {
	if m.messagesFn != nil {
		return m.messagesFn(ctx, user, since)
	}
	return nil, nil
}

func (m *mockUpdatesService) ExpertQueue(ctx context.Context, expert *model.User, since *time.Time) (*service.ExpertQueue, error) {
	if m.expertQueueFn != nil {
		return m.expertQueueFn(ctx, expert, since)
	}
	return &service.ExpertQueue{}, nil
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(context.Context) error {
	return m.err
}
