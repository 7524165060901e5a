package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avoronova/imagevault/internal/server/models"
	"github.com/avoronova/imagevault/internal/server/storage"
)

// maxImageNameLength bounds the display name of an image, on rename and
// on upload alike.
const maxImageNameLength = 100

func (s *Server) listImages(c *gin.Context) {
	// Repeating the search parameter is a malformed query, not a
	// multi-term search.
	if len(c.QueryArray("search")) > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid search parameter"})
		return
	}

	images, err := s.catalog.ListImages(c.Request.Context(), c.Query("search"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	if images == nil {
		images = []models.APIImage{}
	}

	c.JSON(http.StatusOK, images)
}

type renameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) renameImage(c *gin.Context) {
	// The name is validated before the id, so a request that is broken in
	// both ways reports the body problem.
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}
	if utf8.RuneCountInString(req.Name) > maxImageNameLength {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "name is too long"})
		return
	}

	imageID := c.Param("id")
	if _, err := uuid.Parse(imageID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}

	owner, err := s.catalog.GetImageOwner(c.Request.Context(), imageID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if owner != c.GetString(usernameKey) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
		return
	}

	affected, err := s.catalog.RenameImage(c.Request.Context(), imageID, req.Name)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

type uploadResponse struct {
	ID     string `json:"id"`
	Src    string `json:"src"`
	Name   string `json:"name"`
	Author string `json:"author"`
}

func (s *Server) uploadImage(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid multipart form"})
		return
	}

	files := form.File["image"]
	if len(files) != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "exactly one image file is required"})
		return
	}
	names := form.Value["name"]
	if len(names) != 1 || names[0] == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}
	if utf8.RuneCountInString(names[0]) > maxImageNameLength {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is too long"})
		return
	}

	fh := files[0]
	if fh.Size > s.config.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "file too large"})
		return
	}

	filename, err := storage.NewFilename(fh.Header.Get("Content-Type"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.respondError(c, err)
		return
	}
	defer f.Close()

	src, err := s.files.Save(c.Request.Context(), filename, f)
	if err != nil {
		s.respondError(c, err)
		return
	}

	img, err := s.catalog.CreateImage(c.Request.Context(), src, names[0], c.GetString(usernameKey))
	if err != nil {
		s.respondError(c, err)
		return
	}

	author, _ := img.Author.ID()
	c.JSON(http.StatusCreated, uploadResponse{
		ID:     img.ID,
		Src:    img.Src,
		Name:   img.Name,
		Author: author,
	})
}

// serveFrontend serves the bundled single-page UI: known files as-is,
// anything else falls back to index.html for client-side routing.
func (s *Server) serveFrontend(c *gin.Context) {
	p := filepath.Join(s.config.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(p); err == nil && !info.IsDir() {
		c.File(p)
		return
	}
	c.File(filepath.Join(s.config.StaticDir, "index.html"))
}
