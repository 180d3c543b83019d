package agent

const (
	SelectAgentByID = `
		SELECT id, uuid, email, password_hash, role, name, phone, profile_picture, created_at, updated_at, deleted_at
		FROM agents
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	SelectAgentByEmail = `
		SELECT id, uuid, email, password_hash, role, name, phone, profile_picture, created_at, updated_at, deleted_at
		FROM agents
		WHERE email = $1 AND deleted_at IS NULL
	`
	InsertAgent = `
		INSERT INTO agents (email, password_hash, name, phone, profile_picture)
		VALUES ($1, $2, $3, $4, 'default-avatar.jpg')
		RETURNING
		  id, uuid, email, password_hash, role, name, phone, profile_picture, created_at, updated_at, deleted_at
	`
	SelectIdByUUID = `SELECT id FROM agents WHERE uuid = $1::uuid`

	SelectAvatar = `
		SELECT profile_picture FROM agents WHERE id = $1 AND deleted_at IS NULL
	`
	// SwapAvatar is the commit boundary of the avatar pipeline: the pointer
	// moves in a single statement, and only if the basename the request read
	// at its start is still the stored one. Zero rows affected means a
	// concurrent upload won the race.
	SwapAvatar = `
		UPDATE agents
		SET profile_picture = $2,
		    updated_at = now()
		WHERE id = $1
		  AND profile_picture IS NOT DISTINCT FROM $3
		  AND deleted_at IS NULL
	`
)
