package response

import (
	"github.com/gin-gonic/gin"
)

// The wire format here mirrors the original attendance API and must stay
// compatible with it: errors are flat `{"error": "..."}` objects, success
// bodies are endpoint-specific and written by the handlers directly.

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Message is used by the embedding endpoints, which historically report
// failures under a "message" key instead of "error".
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Result writes the `{success, message}` envelope of the store/upload
// embedding endpoints, with optional extra fields merged in.
func Result(c *gin.Context, status int, success bool, message string, extra gin.H) {
	body := gin.H{
		"success": success,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}
