package listing

const (
	SelectListingByID = `
		SELECT id, uuid, agent_id, title, description, price, location, property_type,
		       bedrooms, bathrooms, area_sqft, features, contact_info, images, videos,
		       created_at, updated_at, expires_at
		FROM listings
		WHERE uuid = $1 AND (expires_at IS NULL OR expires_at > now())
	`
	InsertListing = `
		INSERT INTO listings (agent_id, title, description, price, location, property_type,
		                      bedrooms, bathrooms, area_sqft, features, contact_info, images, videos)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, '[]'::jsonb, '[]'::jsonb)
		RETURNING
		  id, uuid, agent_id, title, description, price, location, property_type,
		  bedrooms, bathrooms, area_sqft, features, contact_info, images, videos,
		  created_at, updated_at, expires_at
	`
	SelectIdByUUID = `SELECT id FROM listings WHERE uuid = $1::uuid`

	// Media lists are append-only jsonb arrays; items are never replaced,
	// the whole row goes away on expiry.
	AppendListingImage = `
		UPDATE listings
		SET images = images || to_jsonb($2::text),
		    updated_at = now()
		WHERE id = $1
	`
	AppendListingVideo = `
		UPDATE listings
		SET videos = videos || to_jsonb($2::text),
		    updated_at = now()
		WHERE id = $1
	`
)
