package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"Agora/internal/core/boards"
	"Agora/internal/core/comments"
	"Agora/internal/core/posts"
)

const postColumns = `
	id, board_id, user_id, title, content, extra_fields,
	view_count, comment_count, like_count, dislike_count,
	is_notice, is_anonymous, created_at, updated_at, deleted_at`

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// PostRepository persists posts with their owned image and tag rows.
// It also serves as the comment service's post lookup.
type PostRepository struct {
	db *sql.DB
}

// Create inserts the post row plus its images and tags in one transaction.
func (r *PostRepository) Create(ctx context.Context, post *posts.Post) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	extra, err := marshalExtraFields(post.ExtraFields)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (board_id, user_id, title, content, extra_fields, is_notice, is_anonymous, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, query,
		post.BoardID, post.AuthorID, post.Title, post.Content, extra,
		post.IsNotice, post.IsAnonymous,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	if err := r.insertImages(ctx, tx, post.ID, post.Images); err != nil {
		return err
	}
	if err := r.insertTags(ctx, tx, post.ID, post.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post creation: %w", err)
	}
	return nil
}

// GetByID retrieves a post with its images and tags. Soft-deleted rows
// are returned with DeletedAt set so callers can tell deleted from
// missing.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `SELECT` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.loadImages(ctx, post); err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update persists the editable columns and replaces the image and tag
// lists, all in one transaction.
func (r *PostRepository) Update(ctx context.Context, post *posts.Post) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	extra, err := marshalExtraFields(post.ExtraFields)
	if err != nil {
		return err
	}

	query := `
		UPDATE posts
		SET title = $1, content = $2, extra_fields = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
	`
	result, err := tx.ExecContext(ctx, query, post.Title, post.Content, extra, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return posts.ErrPostNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_images WHERE post_id = $1`, post.ID); err != nil {
		return fmt.Errorf("failed to clear post images: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1`, post.ID); err != nil {
		return fmt.Errorf("failed to clear post tags: %w", err)
	}
	if err := r.insertImages(ctx, tx, post.ID, post.Images); err != nil {
		return err
	}
	if err := r.insertTags(ctx, tx, post.ID, post.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post update: %w", err)
	}
	return nil
}

// UpdateExtraFields persists only the extra-fields map.
func (r *PostRepository) UpdateExtraFields(ctx context.Context, id int64, extra map[string]any) error {
	payload, err := marshalExtraFields(extra)
	if err != nil {
		return err
	}

	query := `
		UPDATE posts
		SET extra_fields = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, payload, id)
	if err != nil {
		return fmt.Errorf("failed to update post extra fields: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}

// SoftDelete marks the post deleted. Already-deleted posts report
// ErrPostNotFound.
func (r *PostRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE posts
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft-delete post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}

// IncrementViewCount bumps view_count with SQL arithmetic so concurrent
// views never lose updates.
func (r *PostRepository) IncrementViewCount(ctx context.Context, id int64) error {
	query := `UPDATE posts SET view_count = view_count + 1 WHERE id = $1 AND deleted_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}

// ListByBoard retrieves a page of live non-notice posts, newest first,
// plus the total live count for pagination.
func (r *PostRepository) ListByBoard(ctx context.Context, boardID int64, limit, offset int) ([]*posts.Post, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*) FROM posts
		WHERE board_id = $1 AND deleted_at IS NULL AND is_notice = FALSE
	`
	if err := r.db.QueryRowContext(ctx, countQuery, boardID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := `SELECT` + postColumns + `
		FROM posts
		WHERE board_id = $1 AND deleted_at IS NULL AND is_notice = FALSE
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, boardID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	result, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// ListNoticesByBoard retrieves live notice posts, newest first.
func (r *PostRepository) ListNoticesByBoard(ctx context.Context, boardID int64) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + `
		FROM posts
		WHERE board_id = $1 AND deleted_at IS NULL AND is_notice = TRUE
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// GetPostMeta resolves the post facts the comment service needs,
// joining boards for the board type.
func (r *PostRepository) GetPostMeta(ctx context.Context, postID int64) (*comments.PostMeta, error) {
	query := `
		SELECT p.id, p.user_id, p.deleted_at, p.extra_fields, b.board_type
		FROM posts p
		JOIN boards b ON b.id = p.board_id
		WHERE p.id = $1
	`

	var (
		meta      comments.PostMeta
		deletedAt sql.NullTime
		extra     []byte
		boardType string
	)
	err := r.db.QueryRowContext(ctx, query, postID).
		Scan(&meta.ID, &meta.AuthorID, &deletedAt, &extra, &boardType)
	if err == sql.ErrNoRows {
		return nil, comments.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post meta: %w", err)
	}

	meta.Deleted = deletedAt.Valid
	meta.BoardType = boards.Type(boardType)

	fields, err := unmarshalExtraFields(extra)
	if err != nil {
		return nil, err
	}
	if fields != nil {
		probe := posts.Post{ExtraFields: fields}
		meta.SelectedCommentID = probe.SelectedCommentID()
	}
	return &meta, nil
}

func (r *PostRepository) insertImages(ctx context.Context, tx *sql.Tx, postID int64, images []posts.PostImage) error {
	for i := range images {
		query := `
			INSERT INTO post_images (post_id, url, sort_order)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query, postID, images[i].URL, images[i].SortOrder).Scan(&images[i].ID); err != nil {
			return fmt.Errorf("failed to insert post image: %w", err)
		}
		images[i].PostID = postID
	}
	return nil
}

func (r *PostRepository) insertTags(ctx context.Context, tx *sql.Tx, postID int64, tags []string) error {
	for i, name := range tags {
		query := `INSERT INTO post_tags (post_id, name, sort_order) VALUES ($1, $2, $3)`
		if _, err := tx.ExecContext(ctx, query, postID, name, i); err != nil {
			return fmt.Errorf("failed to insert post tag: %w", err)
		}
	}
	return nil
}

func (r *PostRepository) loadImages(ctx context.Context, post *posts.Post) error {
	query := `
		SELECT id, post_id, url, sort_order
		FROM post_images
		WHERE post_id = $1
		ORDER BY sort_order
	`
	rows, err := r.db.QueryContext(ctx, query, post.ID)
	if err != nil {
		return fmt.Errorf("failed to load post images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img posts.PostImage
		if err := rows.Scan(&img.ID, &img.PostID, &img.URL, &img.SortOrder); err != nil {
			return fmt.Errorf("failed to scan post image: %w", err)
		}
		post.Images = append(post.Images, img)
	}
	return rows.Err()
}

func (r *PostRepository) loadTags(ctx context.Context, post *posts.Post) error {
	query := `
		SELECT name
		FROM post_tags
		WHERE post_id = $1
		ORDER BY sort_order
	`
	rows, err := r.db.QueryContext(ctx, query, post.ID)
	if err != nil {
		return fmt.Errorf("failed to load post tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan post tag: %w", err)
		}
		post.Tags = append(post.Tags, name)
	}
	return rows.Err()
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var (
		post      posts.Post
		extra     []byte
		deletedAt sql.NullTime
	)
	err := row.Scan(
		&post.ID, &post.BoardID, &post.AuthorID, &post.Title, &post.Content, &extra,
		&post.ViewCount, &post.CommentCount, &post.LikeCount, &post.DislikeCount,
		&post.IsNotice, &post.IsAnonymous, &post.CreatedAt, &post.UpdatedAt, &deletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		post.DeletedAt = &t
	}

	post.ExtraFields, err = unmarshalExtraFields(extra)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func collectPosts(rows *sql.Rows) ([]*posts.Post, error) {
	var result []*posts.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return result, nil
}

func marshalExtraFields(extra map[string]any) ([]byte, error) {
	if len(extra) == 0 {
		return []byte(`{}`), nil
	}
	payload, err := json.Marshal(extra)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extra fields: %w", err)
	}
	return payload, nil
}

func unmarshalExtraFields(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extra fields: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields, nil
}
