package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"basegraph.app/helpdesk/common/id"
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/oracle"
	"basegraph.app/helpdesk/internal/store"
)

// decisionContextMessages is how much of the opening exchange the oracle sees when routing.
const decisionContextMessages = 10

type AssignOutcome string

const (
	OutcomeAssigned           AssignOutcome = "assigned"
	OutcomeAlreadyAssigned    AssignOutcome = "already_assigned"
	OutcomeNoExpertsAvailable AssignOutcome = "no_experts_available"
	OutcomeNoSuitableExpert   AssignOutcome = "no_suitable_expert"
	OutcomeInvalidExpertID    AssignOutcome = "invalid_expert_id"
	OutcomeError              AssignOutcome = "error"
)

type AssignResult struct {
	Outcome         AssignOutcome
	ExpertProfileID *int64
	ExpertUserID    *int64
	Err             error
}

type AssignmentService interface {
	// AutoAssign never fails. Every problem is reported through the outcome.
	AutoAssign(ctx context.Context, conversationID int64) AssignResult
	Claim(ctx context.Context, conversationID int64, expert *model.User) error
	Unclaim(ctx context.Context, conversationID int64, expert *model.User) error
}

var errLostRace = errors.New("conversation assigned concurrently")

type assignmentService struct {
	stores StoreProvider
	tx     TxRunner
	oracle oracle.Oracle
}

func NewAssignmentService(stores StoreProvider, tx TxRunner, o oracle.Oracle) AssignmentService {
	return &assignmentService{
		stores: stores,
		tx:     tx,
		oracle: o,
	}
}

func (s *assignmentService) AutoAssign(ctx context.Context, conversationID int64) AssignResult {
	conv, err := s.stores.Conversations().GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AssignResult{Outcome: OutcomeError, Err: ErrConversationNotFound}
		}
		return AssignResult{Outcome: OutcomeError, Err: fmt.Errorf("loading conversation: %w", err)}
	}
	if conv.IsAssigned() {
		return AssignResult{Outcome: OutcomeAlreadyAssigned, ExpertUserID: conv.AssignedExpertID}
	}

	profiles, err := s.stores.ExpertProfiles().List(ctx)
	if err != nil {
		return AssignResult{Outcome: OutcomeError, Err: fmt.Errorf("listing expert profiles: %w", err)}
	}
	candidates := make([]oracle.Candidate, 0, len(profiles))
	byID := make(map[int64]model.ExpertProfile, len(profiles))
	for _, p := range profiles {
		// The initiator keeps a profile too, but never answers their own question.
		if p.UserID == conv.InitiatorID {
			continue
		}
		byID[p.ID] = p
		candidates = append(candidates, oracle.Candidate{
			ID:                 p.ID,
			Username:           p.Username,
			Bio:                p.Bio,
			KnowledgeBaseLinks: p.KnowledgeBaseLinks,
		})
	}
	if len(candidates) == 0 {
		return AssignResult{Outcome: OutcomeNoExpertsAvailable}
	}

	messages, err := s.stores.Messages().ListEarliest(ctx, conv.ID, decisionContextMessages)
	if err != nil {
		return AssignResult{Outcome: OutcomeError, Err: fmt.Errorf("loading messages: %w", err)}
	}

	picked, err := s.oracle.SelectExpert(ctx, decisionContext(conv, messages), candidates)
	if err != nil {
		return AssignResult{Outcome: OutcomeError, Err: fmt.Errorf("selecting expert: %w", err)}
	}
	if picked == nil {
		return AssignResult{Outcome: OutcomeNoSuitableExpert}
	}
	profile, ok := byID[*picked]
	if !ok {
		slog.WarnContext(ctx, "oracle picked an unknown expert", "expert_profile_id", *picked)
		return AssignResult{Outcome: OutcomeInvalidExpertID}
	}

	if err := s.assign(ctx, conv.ID, &profile); err != nil {
		if errors.Is(err, errLostRace) {
			return AssignResult{Outcome: OutcomeAlreadyAssigned}
		}
		return AssignResult{Outcome: OutcomeError, Err: err}
	}

	slog.InfoContext(ctx, "conversation auto-assigned",
		"conversation_id", conv.ID,
		"expert_profile_id", profile.ID,
		"expert_user_id", profile.UserID)
	return AssignResult{
		Outcome:         OutcomeAssigned,
		ExpertProfileID: &profile.ID,
		ExpertUserID:    &profile.UserID,
	}
}

func (s *assignmentService) Claim(ctx context.Context, conversationID int64, expert *model.User) error {
	profile, err := requireProfile(ctx, s.stores, expert)
	if err != nil {
		return err
	}

	conv, err := s.stores.Conversations().GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrConversationNotFound
		}
		return fmt.Errorf("loading conversation: %w", err)
	}
	if conv.IsInitiator(expert.ID) {
		return ErrInitiatorCannotClaim
	}
	if conv.IsAssigned() {
		return ErrAlreadyAssigned
	}

	if err := s.assign(ctx, conv.ID, profile); err != nil {
		if errors.Is(err, errLostRace) {
			return ErrAlreadyAssigned
		}
		return err
	}

	slog.InfoContext(ctx, "conversation claimed",
		"conversation_id", conv.ID,
		"expert_user_id", expert.ID)
	return nil
}

func (s *assignmentService) Unclaim(ctx context.Context, conversationID int64, expert *model.User) error {
	profile, err := requireProfile(ctx, s.stores, expert)
	if err != nil {
		return err
	}

	conv, err := s.stores.Conversations().GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrConversationNotFound
		}
		return fmt.Errorf("loading conversation: %w", err)
	}
	if !conv.IsAssignedTo(expert.ID) {
		return ErrNotAssignedExpert
	}

	err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
		released, err := stores.Conversations().Release(ctx, conv.ID, expert.ID)
		if err != nil {
			return fmt.Errorf("releasing conversation: %w", err)
		}
		if !released {
			return ErrNotAssignedExpert
		}

		_, err = stores.ExpertAssignments().ResolveLatest(ctx, conv.ID, profile.ID, time.Now())
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "no assignment record to resolve",
				"conversation_id", conv.ID,
				"expert_profile_id", profile.ID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("resolving assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "conversation unclaimed",
		"conversation_id", conv.ID,
		"expert_user_id", expert.ID)
	return nil
}

// assign performs the compare-and-set and records the assignment in one transaction.
func (s *assignmentService) assign(ctx context.Context, conversationID int64, profile *model.ExpertProfile) error {
	return s.tx.WithTx(ctx, func(stores StoreProvider) error {
		ok, err := stores.Conversations().AssignIfUnassigned(ctx, conversationID, profile.UserID)
		if err != nil {
			return fmt.Errorf("assigning conversation: %w", err)
		}
		if !ok {
			return errLostRace
		}

		now := time.Now()
		record := &model.ExpertAssignment{
			ID:              id.New(),
			ConversationID:  conversationID,
			ExpertProfileID: profile.ID,
			Status:          model.AssignmentStatusActive,
			AssignedAt:      now,
		}
		if err := stores.ExpertAssignments().Create(ctx, record); err != nil {
			return fmt.Errorf("creating expert assignment: %w", err)
		}
		return nil
	})
}

func requireProfile(ctx context.Context, stores StoreProvider, user *model.User) (*model.ExpertProfile, error) {
	profile, err := stores.ExpertProfiles().GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrExpertProfileRequired
		}
		return nil, fmt.Errorf("loading expert profile: %w", err)
	}
	return profile, nil
}

func decisionContext(conv *model.Conversation, messages []model.Message) oracle.DecisionContext {
	return oracle.DecisionContext{
		Title:     conv.Title,
		Status:    conv.Status,
		CreatedAt: conv.CreatedAt,
		Messages:  transcript(messages),
	}
}

func transcript(messages []model.Message) []oracle.TranscriptLine {
	lines := make([]oracle.TranscriptLine, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, oracle.TranscriptLine{Role: m.SenderRole, Content: m.Content})
	}
	return lines
}
