package upload

import (
	"net/http"
	"os"

	"face-attendance/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

var ErrMissingImage = apperror.New(
	apperror.CodeInvalidInput,
	"image file is required",
	http.StatusBadRequest,
)

// ReadImage spools the multipart "image" field to a temp file, reads it back
// once, and removes the file on every exit path. The bytes are the only thing
// that survives the call.
func ReadImage(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, ErrMissingImage
	}

	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return nil, err
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		return nil, err
	}

	return os.ReadFile(path)
}
