package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/server/services"
	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumes *services.ResumeService
}

func NewResumeHandler(resumes *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	upload, f, err := formUpload(c, "resume")
	if err != nil || upload == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Resume file is required"})
		return
	}
	defer f.Close()

	resume, err := h.resumes.Upload(c.Request.Context(), upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "resume": resume})
}

func (h *ResumeHandler) Active(c *gin.Context) {
	resume, err := h.resumes.GetActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "resume": resume})
}

func (h *ResumeHandler) List(c *gin.Context) {
	resumes, err := h.resumes.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(resumes), "resumes": resumes})
}

func (h *ResumeHandler) Activate(c *gin.Context) {
	resume, err := h.resumes.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "resume": resume})
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.resumes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Resume deleted successfully")
}
