package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *GameHandler) BlendWords(c *gin.Context) {
	var pair entity.WordPair
	if err := c.ShouldBindJSON(&pair); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.blender.Blend(c.Request.Context(), pair)
	if err != nil {
		_ = c.Error(err)
		switch {
		case errors.Is(err, entity.ErrMissingCredential):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OpenAI API key not configured."})
		case errors.Is(err, entity.ErrUpstreamFormat):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing AI response"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error blending words: " + upstreamCause(err)})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
