package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"basegraph.app/helpdesk/common"
	"basegraph.app/helpdesk/internal/model"
)

// ProfileUpdate replaces the editable parts of an expert profile wholesale.
type ProfileUpdate struct {
	Bio                *string
	KnowledgeBaseLinks []string
	FAQ                []model.FAQEntry
}

type ExpertService interface {
	Profile(ctx context.Context, expert *model.User) (*model.ExpertProfile, error)
	UpdateProfile(ctx context.Context, expert *model.User, update ProfileUpdate) (*model.ExpertProfile, error)
	History(ctx context.Context, expert *model.User) ([]model.ExpertAssignment, error)
}

type expertService struct {
	stores StoreProvider
}

func NewExpertService(stores StoreProvider) ExpertService {
	return &expertService{stores: stores}
}

func (s *expertService) Profile(ctx context.Context, expert *model.User) (*model.ExpertProfile, error) {
	return requireProfile(ctx, s.stores, expert)
}

func (s *expertService) UpdateProfile(ctx context.Context, expert *model.User, update ProfileUpdate) (*model.ExpertProfile, error) {
	profile, err := requireProfile(ctx, s.stores, expert)
	if err != nil {
		return nil, err
	}

	var problems []string
	faq := make([]model.FAQEntry, 0, len(update.FAQ))
	for i, entry := range update.FAQ {
		if common.IsBlank(entry.Question) || common.IsBlank(entry.Answer) {
			problems = append(problems, fmt.Sprintf("Faq entry %d must have a question and an answer", i+1))
			continue
		}
		faq = append(faq, model.FAQEntry{
			Question: strings.TrimSpace(entry.Question),
			Answer:   strings.TrimSpace(entry.Answer),
		})
	}
	if len(problems) > 0 {
		return nil, newValidationError(problems...)
	}

	links := make([]string, 0, len(update.KnowledgeBaseLinks))
	for _, link := range update.KnowledgeBaseLinks {
		if !common.IsBlank(link) {
			links = append(links, strings.TrimSpace(link))
		}
	}

	profile.Bio = update.Bio
	profile.KnowledgeBaseLinks = links
	profile.FAQ = faq
	if err := s.stores.ExpertProfiles().Update(ctx, profile); err != nil {
		slog.ErrorContext(ctx, "failed to update expert profile",
			"error", err,
			"user_id", expert.ID)
		return nil, fmt.Errorf("updating expert profile: %w", err)
	}

	slog.InfoContext(ctx, "expert profile updated",
		"expert_profile_id", profile.ID,
		"faq_entries", len(profile.FAQ))
	return profile, nil
}

func (s *expertService) History(ctx context.Context, expert *model.User) ([]model.ExpertAssignment, error) {
	profile, err := requireProfile(ctx, s.stores, expert)
	if err != nil {
		return nil, err
	}
	history, err := s.stores.ExpertAssignments().ListByExpert(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("listing assignment history: %w", err)
	}
	return history, nil
}
