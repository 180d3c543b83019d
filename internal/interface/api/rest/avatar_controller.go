package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"listings-media-api/internal/application/ports"
	"listings-media-api/internal/domain/media"
	agentDB "listings-media-api/internal/infrastructure/db/postgres/agent"
	"listings-media-api/internal/infrastructure/jwt"
	mediaDTO "listings-media-api/internal/interface/api/rest/dto/media"
	"listings-media-api/internal/interface/api/rest/middleware"
	"listings-media-api/internal/interface/api/rest/validator"
)

type AvatarController struct {
	avatarService ports.AvatarService
	logger        *zap.Logger
}

func NewAvatarController(
	r *gin.Engine,
	avatarService ports.AvatarService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AvatarController {
	avc := &AvatarController{
		avatarService: avatarService,
		logger:        logger,
	}

	r.GET(RouteAgentAvatar, avc.GetAvatarHandler)
	r.POST(RouteAgentAvatar, middleware.AuthMiddleware(jwtService), avc.UploadAvatarHandler)

	return avc
}

func (avc *AvatarController) GetAvatarHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("agent_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "agent_id must be a valid UUID"},
		)
		return
	}

	basename, err := avc.avatarService.CurrentAvatar(c.Request.Context(), uuid)
	if err != nil {
		if errors.Is(err, agentDB.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get avatar"},
		)
		avc.logger.Error("CurrentAvatar() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, mediaDTO.AvatarResponse{ProfilePicture: basename})
}

func (avc *AvatarController) UploadAvatarHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("agent_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "agent_id must be a valid UUID"},
		)
		return
	}

	// an agent may only change their own avatar
	if c.GetString(middleware.CtxAgentID) != uuid.String() {
		c.JSON(http.StatusForbidden, gin.H{"error": "token does not match agent_id"})
		return
	}

	fh, err := c.FormFile("profile_picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, mediaDTO.UploadResponse{
			Success: false,
			Message: "No file uploaded.",
		})
		return
	}

	result, err := avc.avatarService.UploadAvatar(c.Request.Context(), uuid, fh)
	if err != nil {
		if errors.Is(err, agentDB.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
			return
		}

		status, msg := uploadFailure(err)
		if status == http.StatusInternalServerError || status == http.StatusConflict {
			avc.logger.Error("UploadAvatar() error", zap.Error(err), zap.Stringer("agent_uuid", uuid))
		}
		c.JSON(status, mediaDTO.UploadResponse{
			Success: false,
			Message: msg,
		})
		return
	}

	c.JSON(http.StatusOK, mediaDTO.ToUploadResponse(*result, c.Query("debug") == "1"))
}

// uploadFailure translates a pipeline error kind into the status code and
// client-facing message the mobile apps already parse.
func uploadFailure(err error) (int, string) {
	switch media.KindOf(err) {
	case media.KindUnsupportedFormat:
		return http.StatusUnsupportedMediaType, "File type not allowed. Allowed types: jpeg, png, gif, webp."
	case media.KindTooLarge:
		return http.StatusRequestEntityTooLarge, "File is too large. Maximum size is 10MB."
	case media.KindTooSmall:
		return http.StatusBadRequest, "Image too small. Minimum size is 50x50 pixels."
	case media.KindCorrupt:
		return http.StatusBadRequest, "Uploaded file is not a valid image."
	case media.KindUnreadable:
		return http.StatusBadRequest, "Failed to read uploaded file."
	case media.KindConsistency:
		return http.StatusConflict, "Avatar changed concurrently, please retry."
	}
	return http.StatusInternalServerError, "Failed to process upload."
}
