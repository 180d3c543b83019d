package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"listings-media-api/internal/domain/agent"
	"listings-media-api/internal/infrastructure/db/postgres"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAgentNotFound      = errors.New("agent not found")
)

// DB is the slice of pgxpool.Pool the repository needs; pgxmock satisfies it
// in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) agent.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAgentByID(ctx context.Context, uuid agent.UUID) (*agent.Agent, error) {
	a := new(Agent)
	err := r.db.QueryRow(ctx, SelectAgentByID, uuid.String()).Scan(
		&a.ID,
		&a.UUID,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.Name,
		&a.Phone,
		&a.ProfilePicture,

		&a.CreatedAt,
		&a.UpdatedAt,
		&a.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), err
}

func (r *Repository) FetchAgentByEmail(ctx context.Context, email string) (*agent.Agent, error) {
	a := new(Agent)
	err := r.db.QueryRow(ctx, SelectAgentByEmail, email).Scan(
		&a.ID,
		&a.UUID,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.Name,
		&a.Phone,
		&a.ProfilePicture,

		&a.CreatedAt,
		&a.UpdatedAt,
		&a.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), err
}

func (r *Repository) CreateAgent(ctx context.Context, req agent.Agent) (*agent.Agent, error) {
	a := new(Agent)

	err := r.db.QueryRow(
		ctx,
		InsertAgent,
		req.Email, req.PasswordHash, req.Name, req.Phone,
	).Scan(
		&a.ID,
		&a.UUID,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.Name,
		&a.Phone,
		&a.ProfilePicture,

		&a.CreatedAt,
		&a.UpdatedAt,
		&a.DeletedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(a), err
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid agent.UUID) (agent.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("uuid %s: %w", uuid.String(), ErrAgentNotFound)
		}
		return 0, err
	}

	return agent.ID(id), nil
}

func (r *Repository) FetchAvatar(ctx context.Context, id agent.ID) (string, error) {
	var basename string
	if err := r.db.QueryRow(ctx, SelectAvatar, uint64(id)).Scan(&basename); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("agent %d: %w", id, ErrAgentNotFound)
		}
		return "", err
	}
	return basename, nil
}

func (r *Repository) SwapAvatar(ctx context.Context, id agent.ID, newBasename, prevBasename string) (bool, error) {
	tag, err := r.db.Exec(ctx, SwapAvatar, uint64(id), newBasename, prevBasename)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
