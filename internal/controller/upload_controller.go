package controller

import (
	"net/http"

	"github.com/BizzNEST/BizzTEST/internal/service"
	"github.com/BizzNEST/BizzTEST/internal/util"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// Upload godoc
// @Summary Upload an image
// @Description Accepts an image up to 10MB and returns its public URL. Open to anonymous respondents answering file-upload questions.
// @Tags uploads
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Image file"
// @Success 201 {object} util.Response{data=object} "Stored file URL"
// @Failure 400 {object} util.Response "Missing, oversized or non-image file"
// @Router /api/upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "No file provided")
		return
	}

	if fileHeader.Size > util.MaxUploadSize {
		util.Error(ctx, http.StatusRequestEntityTooLarge, "File exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// Sniff the real content type; the client-supplied one is not
	// trusted.
	mimeType, err := util.ValidateMimeType(file, []string{util.MimeImage})
	file.Close()
	if err != nil {
		util.BadRequest(ctx, "Only image uploads are allowed")
		return
	}

	// Reopen to upload from the start of the stream.
	file, err = fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := util.UploadFilename(fileHeader.Filename)

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"url":      url,
		"filename": filename,
		"size":     fileHeader.Size,
		"mimeType": mimeType,
	})
}
