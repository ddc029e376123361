package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *GameHandler) GetWords(c *gin.Context) {
	resp, err := h.words.RandomWords()
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
