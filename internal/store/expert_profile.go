package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"basegraph.app/helpdesk/core/db/sqlc"
	"basegraph.app/helpdesk/internal/model"
	"github.com/jackc/pgx/v5"
)

type expertProfileStore struct {
	queries *sqlc.Queries
}

func newExpertProfileStore(queries *sqlc.Queries) ExpertProfileStore {
	return &expertProfileStore{queries: queries}
}

func (s *expertProfileStore) GetByUserID(ctx context.Context, userID int64) (*model.ExpertProfile, error) {
	row, err := s.queries.GetExpertProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toExpertProfileModel(row)
}

func (s *expertProfileStore) List(ctx context.Context) ([]model.ExpertProfile, error) {
	rows, err := s.queries.ListExpertProfiles(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.ExpertProfile, 0, len(rows))
	for _, row := range rows {
		p, err := toExpertProfileModel(row)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, nil
}

func (s *expertProfileStore) Create(ctx context.Context, profile *model.ExpertProfile) error {
	row, err := s.queries.CreateExpertProfile(ctx, sqlc.CreateExpertProfileParams{
		ID:     profile.ID,
		UserID: profile.UserID,
	})
	if err != nil {
		return err
	}
	profile.ID = row.ID
	profile.Bio = row.Bio
	profile.KnowledgeBaseLinks = row.KnowledgeBaseLinks
	profile.FAQ = []model.FAQEntry{}
	profile.CreatedAt = row.CreatedAt.Time
	profile.UpdatedAt = row.UpdatedAt.Time
	return nil
}

func (s *expertProfileStore) Update(ctx context.Context, profile *model.ExpertProfile) error {
	faq := profile.FAQ
	if faq == nil {
		faq = []model.FAQEntry{}
	}
	raw, err := json.Marshal(faq)
	if err != nil {
		return fmt.Errorf("encoding faq: %w", err)
	}
	links := profile.KnowledgeBaseLinks
	if links == nil {
		links = []string{}
	}

	_, err = s.queries.UpdateExpertProfile(ctx, sqlc.UpdateExpertProfileParams{
		UserID:             profile.UserID,
		Bio:                profile.Bio,
		KnowledgeBaseLinks: links,
		Faq:                raw,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	updated, err := s.GetByUserID(ctx, profile.UserID)
	if err != nil {
		return err
	}
	*profile = *updated
	return nil
}

func toExpertProfileModel(row sqlc.ExpertProfileDetail) (*model.ExpertProfile, error) {
	faq := []model.FAQEntry{}
	if len(row.Faq) > 0 {
		if err := json.Unmarshal(row.Faq, &faq); err != nil {
			return nil, fmt.Errorf("decoding faq for expert profile %d: %w", row.ID, err)
		}
	}
	links := row.KnowledgeBaseLinks
	if links == nil {
		links = []string{}
	}
	return &model.ExpertProfile{
		ID:                 row.ID,
		UserID:             row.UserID,
		Username:           row.Username,
		Bio:                row.Bio,
		KnowledgeBaseLinks: links,
		FAQ:                faq,
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}, nil
}
