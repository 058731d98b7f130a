package recognition_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"face-attendance/internal/recognition"
	recognitionMock "face-attendance/internal/recognition/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func multipartImage(t *testing.T, field string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(field, "face.jpg")
	assert.NoError(t, err)
	_, _ = fw.Write([]byte("jpeg-bytes"))
	mw.Close()
	return buf, mw.FormDataContentType()
}

func TestHandler_Compare(t *testing.T) {
	gin.SetMode(gin.TestMode)

	postCompare := func(h *recognition.Handler, field string) *httptest.ResponseRecorder {
		body, contentType := multipartImage(t, field)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/compare", body)
		c.Request.Header.Set("Content-Type", contentType)
		h.Compare(c)
		return w
	}

	t.Run("relays the comparison result untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := recognitionMock.NewMockClient(ctrl)

		upstream := `{"matches":[{"employeeId":"EMP-0001","distance":0.31}]}`
		client.EXPECT().
			Compare(gomock.Any(), []byte("jpeg-bytes")).
			Return([]byte(upstream), nil)

		h := recognition.NewHandler(client)
		w := postCompare(h, "image")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, upstream, w.Body.String())
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("missing image field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := recognitionMock.NewMockClient(ctrl)

		h := recognition.NewHandler(client)
		w := postCompare(h, "photo")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("service unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := recognitionMock.NewMockClient(ctrl)

		client.EXPECT().
			Compare(gomock.Any(), gomock.Any()).
			Return(nil, recognition.ErrUnavailable)

		h := recognition.NewHandler(client)
		w := postCompare(h, "image")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Recognition service unavailable")
	})

	t.Run("comparison failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := recognitionMock.NewMockClient(ctrl)

		client.EXPECT().
			Compare(gomock.Any(), gomock.Any()).
			Return(nil, recognition.ErrCompareFailed)

		h := recognition.NewHandler(client)
		w := postCompare(h, "image")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An error occurred while processing the request")
	})
}
