package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"Agora/internal/core/comments"
)

const commentColumns = `
	id, post_id, user_id, parent_id, content, depth, version,
	like_count, dislike_count, is_anonymous, is_selected,
	created_at, updated_at, deleted_at`

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// GetByID retrieves a comment, including soft-deleted rows.
func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	query := `SELECT` + commentColumns + ` FROM comments WHERE id = $1`
	return scanComment(r.db.QueryRowContext(ctx, query, id))
}

// Create inserts the comment and increments the post's comment_count in
// the same transaction. The count moves with SQL arithmetic so
// concurrent comments never lose updates.
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO comments (post_id, user_id, parent_id, content, depth, is_anonymous, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, version, created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, query,
		comment.PostID, comment.AuthorID, comment.ParentID,
		comment.Content, comment.Depth, comment.IsAnonymous,
	).Scan(&comment.ID, &comment.Version, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	bump := `UPDATE posts SET comment_count = comment_count + 1 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, bump, comment.PostID); err != nil {
		return fmt.Errorf("failed to increment comment count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit comment creation: %w", err)
	}
	return nil
}

// ListRootsByPost retrieves live root comments, oldest first.
func (r *postgresCommentRepo) ListRootsByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `SELECT` + commentColumns + `
		FROM comments
		WHERE post_id = $1 AND parent_id IS NULL AND deleted_at IS NULL
		ORDER BY created_at, id
	`
	return r.list(ctx, query, postID)
}

// ListRepliesByPost retrieves all live replies on the post in one query.
func (r *postgresCommentRepo) ListRepliesByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `SELECT` + commentColumns + `
		FROM comments
		WHERE post_id = $1 AND parent_id IS NOT NULL AND deleted_at IS NULL
		ORDER BY created_at, id
	`
	return r.list(ctx, query, postID)
}

// UpdateContent persists an edited body via compare-and-swap on
// version. Zero rows affected means the row moved, vanished, or was
// deleted; a re-read tells which.
func (r *postgresCommentRepo) UpdateContent(ctx context.Context, comment *comments.Comment) error {
	query := `
		UPDATE comments
		SET content = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3 AND deleted_at IS NULL
		RETURNING version, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, comment.Content, comment.ID, comment.Version).
		Scan(&comment.Version, &comment.UpdatedAt)
	if err == sql.ErrNoRows {
		return r.resolveWriteConflict(ctx, comment.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}

// SoftDelete marks the comment deleted (CAS on version) and decrements
// the post's comment_count, floored at zero, in the same transaction.
func (r *postgresCommentRepo) SoftDelete(ctx context.Context, comment *comments.Comment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE comments
		SET deleted_at = NOW(), version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2 AND deleted_at IS NULL
		RETURNING version, deleted_at
	`
	var deletedAt time.Time
	err = tx.QueryRowContext(ctx, query, comment.ID, comment.Version).
		Scan(&comment.Version, &deletedAt)
	if err == sql.ErrNoRows {
		return r.resolveWriteConflict(ctx, comment.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to soft-delete comment: %w", err)
	}
	comment.DeletedAt = &deletedAt

	drop := `UPDATE posts SET comment_count = GREATEST(comment_count - 1, 0) WHERE id = $1`
	if _, err := tx.ExecContext(ctx, drop, comment.PostID); err != nil {
		return fmt.Errorf("failed to decrement comment count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit comment deletion: %w", err)
	}
	return nil
}

// MarkSelected flags the comment as the accepted answer and records the
// selection in the post's extra fields. Both writes happen in one
// transaction, and the post update is guarded so a racing selection on
// the same post loses with ErrAlreadySelected.
func (r *postgresCommentRepo) MarkSelected(ctx context.Context, commentID, postID int64, selectedAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	postQuery := `
		UPDATE posts
		SET extra_fields = COALESCE(extra_fields, '{}'::jsonb)
			|| jsonb_build_object('selectedCommentId', $1::bigint, 'selectedAt', to_char($2::timestamptz, 'YYYY-MM-DD"T"HH24:MI:SS.MS"Z"')),
			updated_at = NOW()
		WHERE id = $3
			AND deleted_at IS NULL
			AND (extra_fields->>'selectedCommentId') IS NULL
	`
	result, err := tx.ExecContext(ctx, postQuery, commentID, selectedAt.UTC(), postID)
	if err != nil {
		return fmt.Errorf("failed to record selection on post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return comments.ErrAlreadySelected
	}

	commentQuery := `
		UPDATE comments
		SET is_selected = TRUE, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err = tx.ExecContext(ctx, commentQuery, commentID)
	if err != nil {
		return fmt.Errorf("failed to mark comment selected: %w", err)
	}
	rows, err = result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return comments.ErrCommentNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit answer selection: %w", err)
	}
	return nil
}

// ClearSelected removes the accepted-answer flag and strips the
// selection keys from the post's extra fields atomically.
func (r *postgresCommentRepo) ClearSelected(ctx context.Context, commentID, postID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	commentQuery := `
		UPDATE comments
		SET is_selected = FALSE, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND is_selected = TRUE
	`
	result, err := tx.ExecContext(ctx, commentQuery, commentID)
	if err != nil {
		return fmt.Errorf("failed to clear comment selection: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return comments.ErrNotSelected
	}

	postQuery := `
		UPDATE posts
		SET extra_fields = COALESCE(extra_fields, '{}'::jsonb) - 'selectedCommentId' - 'selectedAt',
			updated_at = NOW()
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, postQuery, postID); err != nil {
		return fmt.Errorf("failed to clear selection on post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit answer unselection: %w", err)
	}
	return nil
}

// resolveWriteConflict distinguishes the three reasons a CAS write can
// touch zero rows.
func (r *postgresCommentRepo) resolveWriteConflict(ctx context.Context, id int64) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.IsDeleted() {
		return comments.ErrCommentDeleted
	}
	return comments.ErrVersionConflict
}

func (r *postgresCommentRepo) list(ctx context.Context, query string, postID int64) ([]*comments.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var result []*comments.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return result, nil
}

func scanComment(row rowScanner) (*comments.Comment, error) {
	var (
		comment   comments.Comment
		parentID  sql.NullInt64
		deletedAt sql.NullTime
	)
	err := row.Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID, &parentID,
		&comment.Content, &comment.Depth, &comment.Version,
		&comment.LikeCount, &comment.DislikeCount,
		&comment.IsAnonymous, &comment.IsSelected,
		&comment.CreatedAt, &comment.UpdatedAt, &deletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan comment: %w", err)
	}
	if parentID.Valid {
		v := parentID.Int64
		comment.ParentID = &v
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		comment.DeletedAt = &t
	}
	return &comment, nil
}
