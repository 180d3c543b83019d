package agent

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID uint64

	Agent struct {
		ID   uint64
		UUID uuid.UUID

		Email          string
		PasswordHash   *string
		Role           string
		Name           string
		Phone          string
		ProfilePicture string

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
	Agents []*Agent
)
