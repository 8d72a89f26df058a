package handlers

import (
	"net/http"

	"cricauction-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadHandler handles requests about uploaded images
type UploadHandler struct {
	service service.ImageServiceInterface
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(service service.ImageServiceInterface) *UploadHandler {
	return &UploadHandler{service: service}
}

// DeleteImage handles POST /api/upload/delete-image
// @Summary Delete an uploaded image
// @Tags upload
// @Accept json
// @Produce json
// @Param request body service.DeleteImageRequest true "Public id of the image"
// @Success 200 {object} Response "Image deleted successfully"
// @Failure 400 {object} ErrorResponse "Public ID is required or the image does not exist"
// @Router /upload/delete-image [post]
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	var req service.DeleteImageRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.PublicID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Image deleted successfully", nil)
}
