package agent

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID

	// Agent is a marketplace account that owns exactly one canonical avatar
	// basename at a time.
	Agent struct {
		UUID           UUID
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
