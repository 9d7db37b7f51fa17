package store

import (
	"basegraph.app/helpdesk/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) ExpertProfiles() ExpertProfileStore {
	return newExpertProfileStore(s.queries)
}

func (s *Stores) Conversations() ConversationStore {
	return newConversationStore(s.queries)
}

func (s *Stores) Messages() MessageStore {
	return newMessageStore(s.queries)
}

func (s *Stores) ExpertAssignments() ExpertAssignmentStore {
	return newExpertAssignmentStore(s.queries)
}
