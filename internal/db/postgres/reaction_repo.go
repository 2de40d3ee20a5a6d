package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/reactions"
)

type postgresReactionRepo struct {
	db *sql.DB
}

// NewReactionRepository creates a new PostgreSQL reaction repository.
// It implements both the ledger repository and the target store.
func NewReactionRepository(db *sql.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// ReactionRepository persists the reaction ledger and keeps the
// denormalized like/dislike counters on posts and comments in step with
// it. Every mutation locks the target row first, so the ledger write
// and the counter move commit or roll back together.
type ReactionRepository struct {
	db *sql.DB
}

// GetByUserAndTarget retrieves the user's current reaction to a target.
func (r *ReactionRepository) GetByUserAndTarget(ctx context.Context, userID int64, targetType reactions.TargetType, targetID int64) (*reactions.Reaction, error) {
	query := `
		SELECT id, user_id, target_type, target_id, reaction_type, created_at, updated_at
		FROM reactions
		WHERE user_id = $1 AND target_type = $2 AND target_id = $3
	`

	var reaction reactions.Reaction
	err := r.db.QueryRowContext(ctx, query, userID, string(targetType), targetID).Scan(
		&reaction.ID, &reaction.UserID, &reaction.TargetType, &reaction.TargetID,
		&reaction.Type, &reaction.CreatedAt, &reaction.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, reactions.ErrReactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction: %w", err)
	}
	return &reaction, nil
}

// GetTarget loads the engine's snapshot of a post or comment. Deleted
// targets come back with Deleted set rather than an error.
func (r *ReactionRepository) GetTarget(ctx context.Context, targetType reactions.TargetType, targetID int64) (*reactions.Target, error) {
	query, err := targetQuery(targetType, false)
	if err != nil {
		return nil, err
	}

	var (
		target    reactions.Target
		deletedAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, targetID).Scan(
		&target.ID, &target.OwnerID, &target.LikeCount, &target.DislikeCount, &deletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, reactions.ErrTargetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction target: %w", err)
	}
	target.Deleted = deletedAt.Valid
	return &target, nil
}

// Create inserts a ledger row and increments the matching counter. Two
// racing firsts hit the unique constraint; the loser reports
// ErrDuplicateReaction so the service can re-read and retry.
func (r *ReactionRepository) Create(ctx context.Context, reaction *reactions.Reaction) (*reactions.Counts, error) {
	var counts *reactions.Counts
	err := r.withLockedTarget(ctx, reaction.TargetType, reaction.TargetID, func(tx *sql.Tx) error {
		query := `
			INSERT INTO reactions (user_id, target_type, target_id, reaction_type, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`
		err := tx.QueryRowContext(ctx, query,
			reaction.UserID, string(reaction.TargetType), reaction.TargetID, string(reaction.Type),
		).Scan(&reaction.ID, &reaction.CreatedAt, &reaction.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err, "uk_reactions_user_target") {
				return reactions.ErrDuplicateReaction
			}
			return fmt.Errorf("failed to insert reaction: %w", err)
		}

		counts, err = r.adjustCounters(ctx, tx, reaction.TargetType, reaction.TargetID, reaction.Type, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// Cancel deletes the ledger row and decrements the matching counter.
// The delete carries the expected type, so a row switched concurrently
// is left alone and reported as stale.
func (r *ReactionRepository) Cancel(ctx context.Context, reaction *reactions.Reaction) (*reactions.Counts, error) {
	var counts *reactions.Counts
	err := r.withLockedTarget(ctx, reaction.TargetType, reaction.TargetID, func(tx *sql.Tx) error {
		query := `
			DELETE FROM reactions
			WHERE id = $1 AND reaction_type = $2
		`
		result, err := tx.ExecContext(ctx, query, reaction.ID, string(reaction.Type))
		if err != nil {
			return fmt.Errorf("failed to delete reaction: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rows == 0 {
			return reactions.ErrStaleReaction
		}

		old := reaction.Type
		counts, err = r.adjustCounters(ctx, tx, reaction.TargetType, reaction.TargetID, "", &old)
		return err
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// Switch flips the ledger row to newType, moving one count from the old
// column to the new in the same transaction.
func (r *ReactionRepository) Switch(ctx context.Context, reaction *reactions.Reaction, newType reactions.Type) (*reactions.Counts, error) {
	var counts *reactions.Counts
	err := r.withLockedTarget(ctx, reaction.TargetType, reaction.TargetID, func(tx *sql.Tx) error {
		query := `
			UPDATE reactions
			SET reaction_type = $1, updated_at = NOW()
			WHERE id = $2 AND reaction_type = $3
			RETURNING updated_at
		`
		err := tx.QueryRowContext(ctx, query, string(newType), reaction.ID, string(reaction.Type)).
			Scan(&reaction.UpdatedAt)
		if err == sql.ErrNoRows {
			return reactions.ErrStaleReaction
		}
		if err != nil {
			return fmt.Errorf("failed to switch reaction: %w", err)
		}

		old := reaction.Type
		reaction.Type = newType
		counts, err = r.adjustCounters(ctx, tx, reaction.TargetType, reaction.TargetID, newType, &old)
		return err
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// withLockedTarget runs fn inside a transaction holding a FOR UPDATE
// lock on the target row, serializing counter moves per target.
func (r *ReactionRepository) withLockedTarget(ctx context.Context, targetType reactions.TargetType, targetID int64, fn func(tx *sql.Tx) error) error {
	query, err := targetQuery(targetType, true)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		target    reactions.Target
		deletedAt sql.NullTime
	)
	err = tx.QueryRowContext(ctx, query, targetID).Scan(
		&target.ID, &target.OwnerID, &target.LikeCount, &target.DislikeCount, &deletedAt,
	)
	if err == sql.ErrNoRows {
		return reactions.ErrTargetNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock reaction target: %w", err)
	}
	if deletedAt.Valid {
		return reactions.ErrTargetDeleted
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reaction change: %w", err)
	}
	return nil
}

// adjustCounters applies the counter delta for a ledger change: inc is
// the type gaining a count ("" on cancel), dec the type losing one (nil
// on create). Decrements floor at zero. Returns the updated counters
// straight from the row.
func (r *ReactionRepository) adjustCounters(ctx context.Context, tx *sql.Tx, targetType reactions.TargetType, targetID int64, inc reactions.Type, dec *reactions.Type) (*reactions.Counts, error) {
	table, err := targetTable(targetType)
	if err != nil {
		return nil, err
	}

	likeDelta := 0
	dislikeDelta := 0
	switch inc {
	case reactions.TypeLike:
		likeDelta++
	case reactions.TypeDislike:
		dislikeDelta++
	}
	if dec != nil {
		switch *dec {
		case reactions.TypeLike:
			likeDelta--
		case reactions.TypeDislike:
			dislikeDelta--
		}
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET like_count = GREATEST(like_count + $1, 0),
			dislike_count = GREATEST(dislike_count + $2, 0)
		WHERE id = $3
		RETURNING like_count, dislike_count
	`, table)

	var counts reactions.Counts
	if err := tx.QueryRowContext(ctx, query, likeDelta, dislikeDelta, targetID).Scan(&counts.LikeCount, &counts.DislikeCount); err != nil {
		return nil, fmt.Errorf("failed to adjust %s counters: %w", table, err)
	}
	return &counts, nil
}

func targetTable(targetType reactions.TargetType) (string, error) {
	switch targetType {
	case reactions.TargetPost:
		return "posts", nil
	case reactions.TargetComment:
		return "comments", nil
	default:
		return "", reactions.ErrInvalidTargetType
	}
}

func targetQuery(targetType reactions.TargetType, forUpdate bool) (string, error) {
	table, err := targetTable(targetType)
	if err != nil {
		return "", err
	}
	query := fmt.Sprintf(`
		SELECT id, user_id, like_count, dislike_count, deleted_at
		FROM %s
		WHERE id = $1
	`, table)
	if forUpdate {
		query += ` FOR UPDATE`
	}
	return query, nil
}
