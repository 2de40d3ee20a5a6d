package reactions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// reactionService implements the Service interface for reaction operations
type reactionService struct {
	repo    Repository
	targets TargetStore
	logger  *slog.Logger
}

// NewService creates a new reaction service instance
func NewService(repo Repository, targets TargetStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &reactionService{
		repo:    repo,
		targets: targets,
		logger:  logger,
	}
}

// React applies the toggle/switch/cancel state machine. All
// preconditions are checked before any mutation, so a failed call never
// leaves a partial effect behind.
func (s *reactionService) React(ctx context.Context, userID int64, targetType TargetType, targetID int64, requested Type) (*ReactResponse, error) {
	if !requested.Valid() {
		return nil, ErrInvalidReactionType
	}
	if !targetType.Valid() {
		return nil, ErrInvalidTargetType
	}

	target, err := s.targets.GetTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}
	if target.Deleted {
		return nil, ErrTargetDeleted
	}
	if target.OwnerID == userID {
		return nil, ErrOwnContent
	}

	existing, err := s.repo.GetByUserAndTarget(ctx, userID, targetType, targetID)
	if err != nil && !errors.Is(err, ErrReactionNotFound) {
		return nil, fmt.Errorf("failed to look up existing reaction: %w", err)
	}

	if existing == nil {
		reaction := &Reaction{
			UserID:     userID,
			TargetType: targetType,
			TargetID:   targetID,
			Type:       requested,
		}
		counts, err := s.repo.Create(ctx, reaction)
		if err != nil {
			return nil, err
		}

		s.logger.Info("reaction created",
			"userId", userID,
			"targetType", targetType,
			"targetId", targetID,
			"type", requested)

		return response(targetID, counts, &requested), nil
	}

	if existing.Type == requested {
		// Same type: cancel
		counts, err := s.repo.Cancel(ctx, existing)
		if err != nil {
			return nil, err
		}

		s.logger.Info("reaction canceled",
			"userId", userID,
			"targetType", targetType,
			"targetId", targetID,
			"type", requested)

		return response(targetID, counts, nil), nil
	}

	// Different type: switch
	counts, err := s.repo.Switch(ctx, existing, requested)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reaction switched",
		"userId", userID,
		"targetType", targetType,
		"targetId", targetID,
		"oldType", existing.Type,
		"newType", requested)

	return response(targetID, counts, &requested), nil
}

// Get returns the user's current reaction, or nil when none exists.
func (s *reactionService) Get(ctx context.Context, userID int64, targetType TargetType, targetID int64) (*Reaction, error) {
	reaction, err := s.repo.GetByUserAndTarget(ctx, userID, targetType, targetID)
	if errors.Is(err, ErrReactionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reaction, nil
}

func response(targetID int64, counts *Counts, myReaction *Type) *ReactResponse {
	return &ReactResponse{
		TargetID:     targetID,
		LikeCount:    counts.LikeCount,
		DislikeCount: counts.DislikeCount,
		MyReaction:   myReaction,
	}
}
