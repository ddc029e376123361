package transport

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *GameHandler) GenerateImage(c *gin.Context) {
	var req entity.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.images.GenerateImage(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Error generating image for %s: %s", strings.TrimSpace(req.Word), upstreamCause(err)),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
