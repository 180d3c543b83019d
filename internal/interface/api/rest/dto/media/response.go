package media

type (
	// UploadResponse is the legacy body shape kept for existing mobile
	// clients: success flag plus either the stored filename or a
	// human-readable rejection message.
	UploadResponse struct {
		Success  bool   `json:"success"`
		Filename string `json:"filename,omitempty"`
		Message  string `json:"message,omitempty"`
		Debug    *Debug `json:"debug,omitempty"`
	}

	// Debug carries upload diagnostics; only present when the request asks
	// for them explicitly.
	Debug struct {
		DetectedMIME string   `json:"detected_mime"`
		DeclaredMIME string   `json:"declared_mime"`
		Width        int      `json:"width"`
		Height       int      `json:"height"`
		SizeBytes    int64    `json:"size_bytes"`
		Files        []string `json:"files"`
		Swept        string   `json:"swept,omitempty"`
	}

	// AvatarResponse reports the current canonical avatar basename.
	AvatarResponse struct {
		ProfilePicture string `json:"profile_picture"`
	}
)
