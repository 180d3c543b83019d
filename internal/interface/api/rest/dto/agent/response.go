package agent

import (
	"github.com/google/uuid"
)

type (
	Agent struct {
		UUID           uuid.UUID `json:"uuid"`
		Email          string    `json:"email"`
		Name           string    `json:"name"`
		Phone          string    `json:"phone"`
		Role           string    `json:"role"`
		ProfilePicture string    `json:"profile_picture"`
	}
	Agents       []Agent
	ResponseData struct {
		Data Agents `json:"data"`
	}
)
