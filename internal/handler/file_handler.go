package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"textilerp/internal/service"
)

// FileHandler handles file upload, download and deletion.
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new file handler.
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// UploadResponse describes a stored file.
type UploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Upload godoc
// @Summary Upload a file
// @Tags files
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to store"
// @Param category formData string false "Related entity category"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /upload [post]
func (h *FileHandler) Upload(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	src, err := header.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	name, url, err := h.fileService.Upload(c.Request().Context(), actorFrom(c), header.Filename, c.FormValue("category"), src)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, UploadResponse{Filename: name, URL: url})
}

// Download godoc
// @Summary Download a stored file
// @Tags files
// @Security BearerAuth
// @Produce octet-stream
// @Param name path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 404 {object} errors.ErrorResponse
// @Router /files/{name} [get]
func (h *FileHandler) Download(c echo.Context) error {
	path, err := h.fileService.Download(c.Request().Context(), actorFrom(c), c.Param("name"))
	if err != nil {
		return respondError(err)
	}
	return c.File(path)
}

// Delete godoc
// @Summary Delete a stored file
// @Tags files
// @Security BearerAuth
// @Produce json
// @Param name path string true "Stored filename"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /files/{name} [delete]
func (h *FileHandler) Delete(c echo.Context) error {
	if err := h.fileService.Delete(c.Request().Context(), actorFrom(c), c.Param("name")); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "file deleted"})
}
