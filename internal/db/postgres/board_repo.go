package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/boards"
)

type postgresBoardRepo struct {
	db *sql.DB
}

// NewBoardRepository creates a new PostgreSQL board repository
func NewBoardRepository(db *sql.DB) boards.Repository {
	return &postgresBoardRepo{db: db}
}

const boardColumns = `id, slug, name, description, board_type, is_active, created_at, updated_at`

func (r *postgresBoardRepo) GetByID(ctx context.Context, id int64) (*boards.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE id = $1`
	return r.scanBoard(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresBoardRepo) GetBySlug(ctx context.Context, slug string) (*boards.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE slug = $1`
	return r.scanBoard(r.db.QueryRowContext(ctx, query, slug))
}

func (r *postgresBoardRepo) List(ctx context.Context) ([]*boards.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards ORDER BY is_active DESC, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	var result []*boards.Board
	for rows.Next() {
		board, err := r.scanBoard(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, board)
	}
	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *postgresBoardRepo) scanBoard(row rowScanner) (*boards.Board, error) {
	var board boards.Board
	err := row.Scan(
		&board.ID, &board.Slug, &board.Name, &board.Description,
		&board.Type, &board.IsActive, &board.CreatedAt, &board.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, boards.ErrBoardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan board: %w", err)
	}
	return &board, nil
}
