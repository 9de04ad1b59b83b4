package httpapi

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/server/services"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// formUpload adapts a multipart file header into a service-level upload.
// The caller owns closing the returned file.
func formUpload(c *gin.Context, field string) (*services.Upload, multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	contentType := header.Header.Get("Content-Type")
	return &services.Upload{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Reader:      f,
	}, f, nil
}

// projectParams reads the multipart form fields. Absent fields stay nil so
// updates only touch what the client sent. Technologies arrive as a JSON
// array string from the admin UI, with a comma-separated fallback.
func projectParams(c *gin.Context) services.ProjectParams {
	var params services.ProjectParams

	if v, ok := c.GetPostForm("title"); ok {
		params.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		params.Description = &v
	}
	if v, ok := c.GetPostForm("liveLink"); ok {
		params.LiveLink = &v
	}
	if v, ok := c.GetPostForm("repoLink"); ok {
		params.RepoLink = &v
	}
	if v, ok := c.GetPostForm("technologies"); ok {
		var techs []string
		if err := json.Unmarshal([]byte(v), &techs); err != nil {
			for _, t := range strings.Split(v, ",") {
				if t = strings.TrimSpace(t); t != "" {
					techs = append(techs, t)
				}
			}
		}
		if techs == nil {
			techs = []string{}
		}
		params.Technologies = techs
	}
	if v, ok := c.GetPostForm("featured"); ok {
		b := v == "true" || v == "1"
		params.Featured = &b
	}
	if v, ok := c.GetPostForm("order"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			params.SortOrder = &n
		}
	}

	return params
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(projects), "projects": projects})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	image, f, err := formUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid image upload"})
		return
	}
	if f != nil {
		defer f.Close()
	}

	project, err := h.projects.Create(c.Request.Context(), projectParams(c), image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "project": project})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	image, f, err := formUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid image upload"})
		return
	}
	if f != nil {
		defer f.Close()
	}

	project, err := h.projects.Update(c.Request.Context(), c.Param("id"), projectParams(c), image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Project deleted successfully")
}
