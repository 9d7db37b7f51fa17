package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/service"
	"basegraph.app/helpdesk/internal/store"
)

// memStore is an in-memory StoreProvider with the same conditional-write
// semantics as the SQL queries. Every call is serialized behind one mutex.
type memStore struct {
	mu          sync.Mutex
	clock       time.Time
	users       map[int64]*model.User
	profiles    map[int64]*model.ExpertProfile
	convs       map[int64]*model.Conversation
	messages    []*model.Message
	assignments []*model.ExpertAssignment
}

func newMemStore() *memStore {
	return &memStore{
		clock:    time.Now().UTC(),
		users:    map[int64]*model.User{},
		profiles: map[int64]*model.ExpertProfile{},
		convs:    map[int64]*model.Conversation{},
	}
}

// tick must be called with mu held.
func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Millisecond)
	return m.clock
}

func (m *memStore) Users() store.UserStore                         { return memUsers{m} }
func (m *memStore) ExpertProfiles() store.ExpertProfileStore       { return memProfiles{m} }
func (m *memStore) Conversations() store.ConversationStore         { return memConversations{m} }
func (m *memStore) Messages() store.MessageStore                   { return memMessages{m} }
func (m *memStore) ExpertAssignments() store.ExpertAssignmentStore { return memAssignments{m} }

// seedUser adds a user with an empty expert profile, as registration does.
func (m *memStore) seedUser(id int64, username string) *model.User {
	u := m.seedUserOnly(id, username)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[id*10] = &model.ExpertProfile{
		ID:                 id * 10,
		UserID:             id,
		KnowledgeBaseLinks: []string{},
		FAQ:                []model.FAQEntry{},
		CreatedAt:          m.tick(),
	}
	return u
}

func (m *memStore) seedUserOnly(id int64, username string) *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &model.User{ID: id, Username: username, CreatedAt: m.tick()}
	m.users[id] = u
	cp := *u
	return &cp
}

func (m *memStore) profileOf(userID int64) *model.ExpertProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

func (m *memStore) setFAQ(userID int64, faq ...model.FAQEntry) {
	p := m.profileOf(userID)
	m.mu.Lock()
	defer m.mu.Unlock()
	p.FAQ = faq
}

func (m *memStore) conversation(id int64) model.Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.detail(m.convs[id])
}

func (m *memStore) messagesIn(conversationID int64) []model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messagesFor(conversationID, 0)
}

func (m *memStore) assignmentsFor(conversationID int64) []model.ExpertAssignment {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.ExpertAssignment
	for _, a := range m.assignments {
		if a.ConversationID == conversationID {
			out = append(out, *a)
		}
	}
	return out
}

// detail mirrors the conversation_details view. mu must be held.
func (m *memStore) detail(c *model.Conversation) model.Conversation {
	out := *c
	if u, ok := m.users[c.InitiatorID]; ok {
		out.InitiatorUsername = u.Username
	}
	out.AssignedExpertUsername = nil
	if c.AssignedExpertID != nil {
		if u, ok := m.users[*c.AssignedExpertID]; ok {
			name := u.Username
			out.AssignedExpertUsername = &name
		}
	}
	return out
}

func (m *memStore) messageDetail(msg *model.Message) model.Message {
	out := *msg
	if u, ok := m.users[msg.SenderID]; ok {
		out.SenderUsername = u.Username
	}
	return out
}

func (m *memStore) messagesFor(conversationID int64, limit int) []model.Message {
	var out []model.Message
	for _, msg := range m.messages {
		if msg.ConversationID == conversationID {
			out = append(out, m.messageDetail(msg))
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

func (m *memStore) filterConvs(keep func(c *model.Conversation) bool, less func(a, b model.Conversation) bool) []model.Conversation {
	var out []model.Conversation
	for _, c := range m.convs {
		if keep(c) {
			out = append(out, m.detail(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byUpdatedDesc(a, b model.Conversation) bool { return a.UpdatedAt.After(b.UpdatedAt) }
func byCreatedAsc(a, b model.Conversation) bool  { return a.CreatedAt.Before(b.CreatedAt) }
func byCreatedDesc(a, b model.Conversation) bool { return a.CreatedAt.After(b.CreatedAt) }

func isWaiting(c *model.Conversation) bool {
	return c.Status == model.ConversationStatusWaiting && c.AssignedExpertID == nil
}

type memUsers struct{ m *memStore }

func (s memUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	u, ok := s.m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s memUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, u := range s.m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s memUsers) Create(_ context.Context, user *model.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, u := range s.m.users {
		if u.Username == user.Username {
			return store.ErrDuplicate
		}
	}
	user.CreatedAt = s.m.tick()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.m.users[user.ID] = &cp
	return nil
}

func (s memUsers) TouchLastActive(_ context.Context, id int64, at time.Time) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if u, ok := s.m.users[id]; ok {
		u.LastActiveAt = &at
	}
	return nil
}

type memProfiles struct{ m *memStore }

func (s memProfiles) withUsername(p *model.ExpertProfile) *model.ExpertProfile {
	cp := *p
	if u, ok := s.m.users[p.UserID]; ok {
		cp.Username = u.Username
	}
	return &cp
}

func (s memProfiles) GetByUserID(_ context.Context, userID int64) (*model.ExpertProfile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, p := range s.m.profiles {
		if p.UserID == userID {
			return s.withUsername(p), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s memProfiles) List(_ context.Context) ([]model.ExpertProfile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []model.ExpertProfile
	for _, p := range s.m.profiles {
		out = append(out, *s.withUsername(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memProfiles) Create(_ context.Context, profile *model.ExpertProfile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	profile.KnowledgeBaseLinks = []string{}
	profile.FAQ = []model.FAQEntry{}
	profile.CreatedAt = s.m.tick()
	cp := *profile
	s.m.profiles[profile.ID] = &cp
	return nil
}

func (s memProfiles) Update(_ context.Context, profile *model.ExpertProfile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, p := range s.m.profiles {
		if p.UserID == profile.UserID {
			p.Bio = profile.Bio
			p.KnowledgeBaseLinks = profile.KnowledgeBaseLinks
			p.FAQ = profile.FAQ
			p.UpdatedAt = s.m.tick()
			*profile = *s.withUsername(p)
			return nil
		}
	}
	return store.ErrNotFound
}

type memConversations struct{ m *memStore }

func (s memConversations) GetByID(_ context.Context, id int64) (*model.Conversation, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.convs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	d := s.m.detail(c)
	return &d, nil
}

func (s memConversations) Create(_ context.Context, conv *model.Conversation) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	now := s.m.tick()
	conv.Status = model.ConversationStatusWaiting
	conv.CreatedAt = now
	conv.UpdatedAt = now
	cp := *conv
	s.m.convs[conv.ID] = &cp
	return nil
}

func (s memConversations) ListForUser(_ context.Context, userID int64) ([]model.Conversation, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.filterConvs(func(c *model.Conversation) bool { return c.IsParticipant(userID) }, byUpdatedDesc), nil
}

func (s memConversations) ListForUserSince(_ context.Context, userID int64, since time.Time) ([]model.Conversation, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.filterConvs(func(c *model.Conversation) bool {
		return c.IsParticipant(userID) && c.UpdatedAt.After(since)
	}, byUpdatedDesc), nil
}

func (s memConversations) ListWaiting(_ context.Context) ([]model.Conversation, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.filterConvs(isWaiting, byCreatedAsc), nil
}

func (s memConversations) ListWaitingSince(_ context.Context, since time.Time) ([]model.Conversation, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.filterConvs(func(c *model.Conversation) bool {
		return isWaiting(c) && c.UpdatedAt.After(since)
	}, byCreatedDesc), nil
}

func (s memConversations) ListAssigned(_ context.Context, expertID int64) ([]model.Conversation, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.filterConvs(func(c *model.Conversation) bool { return c.IsAssignedTo(expertID) }, byUpdatedDesc), nil
}

func (s memConversations) ListAssignedSince(_ context.Context, expertID int64, since time.Time) ([]model.Conversation, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.filterConvs(func(c *model.Conversation) bool {
		return c.IsAssignedTo(expertID) && c.UpdatedAt.After(since)
	}, byUpdatedDesc), nil
}

func (s memConversations) MaxWaitingUpdatedAt(_ context.Context) (*time.Time, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var newest *time.Time
	for _, c := range s.m.convs {
		if isWaiting(c) && (newest == nil || c.UpdatedAt.After(*newest)) {
			t := c.UpdatedAt
			newest = &t
		}
	}
	return newest, nil
}

func (s memConversations) AssignIfUnassigned(_ context.Context, id, expertID int64) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.convs[id]
	if !ok || c.AssignedExpertID != nil {
		return false, nil
	}
	c.AssignedExpertID = &expertID
	c.Status = model.ConversationStatusActive
	c.UpdatedAt = s.m.tick()
	return true, nil
}

func (s memConversations) Release(_ context.Context, id, expertID int64) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.convs[id]
	if !ok || !c.IsAssignedTo(expertID) {
		return false, nil
	}
	c.AssignedExpertID = nil
	c.Status = model.ConversationStatusWaiting
	c.UpdatedAt = s.m.tick()
	return true, nil
}

func (s memConversations) PromoteToActive(_ context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if c, ok := s.m.convs[id]; ok && c.Status == model.ConversationStatusWaiting && c.AssignedExpertID != nil {
		c.Status = model.ConversationStatusActive
		c.UpdatedAt = s.m.tick()
	}
	return nil
}

func (s memConversations) TouchLastMessage(_ context.Context, id int64, at time.Time) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if c, ok := s.m.convs[id]; ok {
		c.LastMessageAt = &at
		c.UpdatedAt = s.m.tick()
	}
	return nil
}

func (s memConversations) SetSummaryIfBlank(_ context.Context, id int64, summary string) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.convs[id]
	if !ok || (c.Summary != nil && strings.TrimSpace(*c.Summary) != "") {
		return false, nil
	}
	c.Summary = &summary
	c.UpdatedAt = s.m.tick()
	return true, nil
}

type memMessages struct{ m *memStore }

func (s memMessages) GetByID(_ context.Context, id int64) (*model.Message, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, msg := range s.m.messages {
		if msg.ID == id {
			d := s.m.messageDetail(msg)
			return &d, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s memMessages) Create(_ context.Context, msg *model.Message) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	msg.IsRead = false
	msg.CreatedAt = s.m.tick()
	cp := *msg
	s.m.messages = append(s.m.messages, &cp)
	return nil
}

func (s memMessages) ListByConversation(_ context.Context, conversationID int64) ([]model.Message, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.messagesFor(conversationID, 0), nil
}

func (s memMessages) ListEarliest(_ context.Context, conversationID int64, limit int32) ([]model.Message, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.messagesFor(conversationID, int(limit)), nil
}

func (s memMessages) CountByConversation(_ context.Context, conversationID int64) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var n int64
	for _, msg := range s.m.messages {
		if msg.ConversationID == conversationID {
			n++
		}
	}
	return n, nil
}

func (s memMessages) CountUnread(_ context.Context, conversationID, viewerID int64) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var n int64
	for _, msg := range s.m.messages {
		if msg.ConversationID == conversationID && msg.SenderID != viewerID && !msg.IsRead {
			n++
		}
	}
	return n, nil
}

func (s memMessages) MarkRead(_ context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, msg := range s.m.messages {
		if msg.ID == id {
			msg.IsRead = true
		}
	}
	return nil
}

func (s memMessages) ListForUserSince(_ context.Context, userID int64, since time.Time) ([]model.Message, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []model.Message
	for _, msg := range s.m.messages {
		c, ok := s.m.convs[msg.ConversationID]
		if ok && c.IsParticipant(userID) && msg.CreatedAt.After(since) {
			out = append(out, s.m.messageDetail(msg))
		}
	}
	return out, nil
}

type memAssignments struct{ m *memStore }

func (s memAssignments) Create(_ context.Context, a *model.ExpertAssignment) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, existing := range s.m.assignments {
		if existing.ConversationID == a.ConversationID && existing.Status == model.AssignmentStatusActive {
			return store.ErrDuplicate
		}
	}
	a.CreatedAt = s.m.tick()
	cp := *a
	s.m.assignments = append(s.m.assignments, &cp)
	return nil
}

func (s memAssignments) ResolveLatest(_ context.Context, conversationID, expertProfileID int64, at time.Time) (*model.ExpertAssignment, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var latest *model.ExpertAssignment
	for _, a := range s.m.assignments {
		if a.ConversationID == conversationID && a.ExpertProfileID == expertProfileID &&
			(latest == nil || a.AssignedAt.After(latest.AssignedAt)) {
			latest = a
		}
	}
	if latest == nil {
		return nil, store.ErrNotFound
	}
	latest.Status = model.AssignmentStatusResolved
	latest.ResolvedAt = &at
	cp := *latest
	return &cp, nil
}

func (s memAssignments) ListByExpert(_ context.Context, expertProfileID int64) ([]model.ExpertAssignment, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []model.ExpertAssignment
	for _, a := range s.m.assignments {
		if a.ExpertProfileID == expertProfileID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedAt.After(out[j].AssignedAt) })
	return out, nil
}

// memTxRunner serializes transaction bodies. Writes are not rolled back on error.
type memTxRunner struct {
	mu    sync.Mutex
	store *memStore
}

func (r *memTxRunner) WithTx(_ context.Context, fn func(stores service.StoreProvider) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.store)
}

// forceAssign sets the expert without touching status, reaching states the
// compare-and-set never produces on its own.
func (m *memStore) forceAssign(conversationID, expertID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.convs[conversationID].AssignedExpertID = &expertID
}
