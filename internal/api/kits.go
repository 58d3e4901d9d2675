package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sipwell/hydrokit-backend/internal/service"
)

// KitHandler serves the kit catalog. Listing is public; artwork upload is
// staff-only and registered separately.
type KitHandler struct {
	kitService   service.IKitService
	imageService *service.ImageService
}

func NewKitHandler(kitService service.IKitService, imageService *service.ImageService) *KitHandler {
	return &KitHandler{
		kitService:   kitService,
		imageService: imageService,
	}
}

func (h *KitHandler) RegisterRoutes(router *gin.RouterGroup) {
	kits := router.Group("/kits")
	{
		kits.GET("", h.ListKits)
		kits.GET("/:name", h.GetKit)
		kits.GET("/:name/similar", h.SimilarKits)
	}
}

// RegisterStaffRoutes mounts the artwork upload under the staff group.
func (h *KitHandler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	staff.POST("/kits/:name/artwork", h.UploadArtwork)
}

func (h *KitHandler) ListKits(c *gin.Context) {
	kits, err := h.kitService.ListKits(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list kits"})
		return
	}
	c.JSON(http.StatusOK, kits)
}

func (h *KitHandler) GetKit(c *gin.Context) {
	kit, err := h.kitService.GetKit(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrKitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "kit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get kit"})
		return
	}
	c.JSON(http.StatusOK, kit)
}

func (h *KitHandler) SimilarKits(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
	kits, err := h.kitService.SimilarKits(c.Request.Context(), c.Param("name"), limit)
	if err != nil {
		if errors.Is(err, service.ErrKitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "kit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find similar kits"})
		return
	}
	c.JSON(http.StatusOK, kits)
}

func (h *KitHandler) UploadArtwork(c *gin.Context) {
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "artwork storage not configured"})
		return
	}

	name := c.Param("name")
	file, header, err := c.Request.FormFile("artwork")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artwork file required"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, 10<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read artwork"})
		return
	}

	url, err := h.imageService.UploadKitArtwork(c.Request.Context(), name, header.Filename, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload artwork"})
		return
	}

	kit, err := h.kitService.SetArtwork(c.Request.Context(), name, url)
	if err != nil {
		if errors.Is(err, service.ErrKitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "kit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save artwork"})
		return
	}

	c.JSON(http.StatusOK, kit)
}
