package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/ai-power-backend/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *GenerateHandler) GenerateText(c *gin.Context) {
	var req entity.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.service.GenerateText(req.Prompt)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *GenerateHandler) GenerateImage(c *gin.Context) {
	var req entity.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.service.GenerateImage(req.Prompt)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *GenerateHandler) GenerateScript(c *gin.Context) {
	var req entity.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.service.GenerateScript(req.Prompt)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// abortWithServiceError maps validation errors to 400; anything else is an
// internal fault.
func abortWithServiceError(c *gin.Context, err error) {
	if errors.Is(err, entity.ErrPromptRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
