package rest

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"listings-media-api/internal/application/ports"
	agentDB "listings-media-api/internal/infrastructure/db/postgres/agent"
	"listings-media-api/internal/infrastructure/jwt"
	listingDTO "listings-media-api/internal/interface/api/rest/dto/listing"
	"listings-media-api/internal/interface/api/rest/middleware"
	"listings-media-api/internal/interface/api/rest/validator"
)

type ListingController struct {
	listingService ports.ListingService
	logger         *zap.Logger
}

func NewListingController(
	r *gin.Engine,
	listingService ports.ListingService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ListingController {
	lc := &ListingController{
		listingService: listingService,
		logger:         logger,
	}

	r.GET(RouteListing, lc.GetListingHandler)
	r.POST(RouteListings, middleware.AuthMiddleware(jwtService), lc.CreateListingHandler)

	return lc
}

func (lc *ListingController) GetListingHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("listing_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "listing_id must be a valid UUID"},
		)
		return
	}

	l, err := lc.listingService.FindListing(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a listing"},
		)
		lc.logger.Error("FindListing() error", zap.Error(err))
		return
	}

	if l == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "listing not found"},
		)
		return
	}

	c.JSON(http.StatusOK, listingDTO.ToResponseListing(*l))
}

func (lc *ListingController) CreateListingHandler(c *gin.Context) {
	ok, agentUUID := validator.IsUUID(c.GetString(middleware.CtxAgentID))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
		return
	}

	var req listingDTO.Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateListing(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form expected"})
		return
	}

	l, mediaResult, err := lc.listingService.CreateListing(
		c.Request.Context(),
		agentUUID,
		listingDTO.ToDomainListing(req),
		formFiles(form, "images"),
		formFiles(form, "videos"),
	)
	if err != nil {
		if errors.Is(err, agentDB.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a listing"},
		)
		lc.logger.Error("CreateListing() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, listingDTO.CreateResponse{
		Listing: listingDTO.ToResponseListing(*l),
		Skipped: listingDTO.ToSkippedItems(mediaResult.Skipped),
	})
}

// formFiles accepts both the bracketed and plain field spellings the web and
// mobile clients send for file arrays.
func formFiles(form *multipart.Form, field string) []*multipart.FileHeader {
	files := form.File[field+"[]"]
	return append(files, form.File[field]...)
}
