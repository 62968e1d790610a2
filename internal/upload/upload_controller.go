package upload

import (
	"net/http"
	"strings"

	"github.com/athleteverse/api/pkg/responses"
	"github.com/athleteverse/api/pkg/storage"
	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20 // 10 MB

type UploadController struct {
	uploader *storage.Uploader
}

func NewUploadController(uploader *storage.Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Uploads an image file and returns its public URL. When object storage is unavailable a placeholder URL is returned instead.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /uploads [post]
func (uc *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		responses.BadRequest(c, "No image file provided")
		return
	}

	if fileHeader.Size > maxImageSize {
		responses.BadRequest(c, "Image must be smaller than 10MB")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		responses.BadRequest(c, "Only image files are accepted")
		return
	}

	result := uc.uploader.Upload(c.Request.Context(), fileHeader)
	responses.SendSuccess(c, http.StatusOK, "Image uploaded", result)
}

// DeleteImage godoc
// @Summary Delete an uploaded image
// @Tags uploads
// @Produce json
// @Param publicId path string true "Public ID returned by upload"
// @Success 200 {object} responses.SuccessResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /uploads/{publicId} [delete]
func (uc *UploadController) DeleteImage(c *gin.Context) {
	// Wildcard params keep their leading slash and object keys contain slashes.
	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if err := uc.uploader.Delete(c.Request.Context(), publicID); err != nil {
		responses.InternalServerError(c, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Image deleted", nil)
}
