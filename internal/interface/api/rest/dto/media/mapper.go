package media

import (
	"listings-media-api/internal/application/ports"
)

func ToUploadResponse(r ports.AvatarResult, withDebug bool) UploadResponse {
	resp := UploadResponse{
		Success:  true,
		Filename: r.Basename,
	}
	if withDebug {
		resp.Debug = &Debug{
			DetectedMIME: r.DetectedMIME,
			DeclaredMIME: r.DeclaredMIME,
			Width:        r.Width,
			Height:       r.Height,
			SizeBytes:    r.SizeBytes,
			Files:        r.Variants,
			Swept:        r.Swept,
		}
	}

	return resp
}
