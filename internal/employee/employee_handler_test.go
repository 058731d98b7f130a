package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"face-attendance/internal/employee"
	employeeerrors "face-attendance/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	listFn   func(ctx context.Context) ([]employee.GalleryEntry, error)
	storeFn  func(ctx context.Context, req employee.StoreEmbeddingRequest) error
	uploadFn func(ctx context.Context, employeeID string, image []byte) error
}

func (f *fakeService) ListWithEmbedding(ctx context.Context) ([]employee.GalleryEntry, error) {
	return f.listFn(ctx)
}
func (f *fakeService) StoreEmbedding(ctx context.Context, req employee.StoreEmbeddingRequest) error {
	return f.storeFn(ctx, req)
}
func (f *fakeService) UploadEmbedding(ctx context.Context, employeeID string, image []byte) error {
	return f.uploadFn(ctx, employeeID, image)
}

func TestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("serves the gallery under the faceImg key", func(t *testing.T) {
		svc := &fakeService{
			listFn: func(ctx context.Context) ([]employee.GalleryEntry, error) {
				return []employee.GalleryEntry{
					{Name: "Ana", Email: "ana@example.com", EmployeeID: "EMP-0001", FaceImg: []float64{0.1, 0.2}},
				}, nil
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"faceImg":[0.1,0.2]`)
		assert.Contains(t, w.Body.String(), `"employeeId":"EMP-0001"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("service failure", func(t *testing.T) {
		svc := &fakeService{
			listFn: func(ctx context.Context) ([]employee.GalleryEntry, error) {
				return nil, errors.New("db down")
			},
		}
		h := employee.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		h.List(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	})
}

func TestHandler_StoreEmbedding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	postJSON := func(h *employee.Handler, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/store-embedding", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		h.StoreEmbedding(c)
		return w
	}

	t.Run("success", func(t *testing.T) {
		var got employee.StoreEmbeddingRequest
		svc := &fakeService{
			storeFn: func(ctx context.Context, req employee.StoreEmbeddingRequest) error {
				got = req
				return nil
			},
		}
		h := employee.NewHandler(svc)

		w := postJSON(h, `{"employeeId":"EMP-0001","faceEmbedding":[0.1,0.2],"name":"Ana"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), "Embedding stored successfully")
		assert.Equal(t, "EMP-0001", got.EmployeeID)
		assert.Equal(t, employee.EmbeddingVector{0.1, 0.2}, got.FaceEmbedding)
	})

	t.Run("keyed-object embedding binds too", func(t *testing.T) {
		var got employee.StoreEmbeddingRequest
		svc := &fakeService{
			storeFn: func(ctx context.Context, req employee.StoreEmbeddingRequest) error {
				got = req
				return nil
			},
		}
		h := employee.NewHandler(svc)

		w := postJSON(h, `{"employeeId":"EMP-0001","faceEmbedding":{"0":0.1,"1":0.2}}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, employee.EmbeddingVector{0.1, 0.2}, got.FaceEmbedding)
	})

	t.Run("missing employeeId", func(t *testing.T) {
		svc := &fakeService{
			storeFn: func(ctx context.Context, req employee.StoreEmbeddingRequest) error {
				t.Fatal("service must not be called")
				return nil
			},
		}
		h := employee.NewHandler(svc)

		w := postJSON(h, `{"faceEmbedding":[0.1]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("embedding already stored", func(t *testing.T) {
		svc := &fakeService{
			storeFn: func(ctx context.Context, req employee.StoreEmbeddingRequest) error {
				return employeeerrors.ErrEmbeddingExists
			},
		}
		h := employee.NewHandler(svc)

		w := postJSON(h, `{"employeeId":"EMP-0001","faceEmbedding":[0.1]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), "already has a face embedding")
	})

	t.Run("internal failures are masked", func(t *testing.T) {
		svc := &fakeService{
			storeFn: func(ctx context.Context, req employee.StoreEmbeddingRequest) error {
				return errors.New("pq: relation does not exist")
			},
		}
		h := employee.NewHandler(svc)

		w := postJSON(h, `{"employeeId":"EMP-0001","faceEmbedding":[0.1]}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Server Error")
		assert.NotContains(t, w.Body.String(), "pq:")
	})
}

func TestHandler_UploadEmbedding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	multipartImage := func(t *testing.T, field string) (*bytes.Buffer, string) {
		t.Helper()
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		fw, err := mw.CreateFormFile(field, "face.jpg")
		assert.NoError(t, err)
		_, _ = fw.Write([]byte("jpeg-bytes"))
		mw.Close()
		return buf, mw.FormDataContentType()
	}

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			uploadFn: func(ctx context.Context, employeeID string, image []byte) error {
				assert.Equal(t, "EMP-0001", employeeID)
				assert.Equal(t, []byte("jpeg-bytes"), image)
				return nil
			},
		}
		h := employee.NewHandler(svc)

		body, contentType := multipartImage(t, "image")
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "employeeId", Value: "EMP-0001"}}
		c.Request = httptest.NewRequest(http.MethodPost, "/upload-embedding/EMP-0001", body)
		c.Request.Header.Set("Content-Type", contentType)
		h.UploadEmbedding(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "EMP-0001", resp["employeeId"])
	})

	t.Run("missing image field", func(t *testing.T) {
		svc := &fakeService{
			uploadFn: func(ctx context.Context, employeeID string, image []byte) error {
				t.Fatal("service must not be called")
				return nil
			},
		}
		h := employee.NewHandler(svc)

		body, contentType := multipartImage(t, "photo")
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "employeeId", Value: "EMP-0001"}}
		c.Request = httptest.NewRequest(http.MethodPost, "/upload-embedding/EMP-0001", body)
		c.Request.Header.Set("Content-Type", contentType)
		h.UploadEmbedding(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "image file is required")
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := &fakeService{
			uploadFn: func(ctx context.Context, employeeID string, image []byte) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)

		body, contentType := multipartImage(t, "image")
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "employeeId", Value: "EMP-0404"}}
		c.Request = httptest.NewRequest(http.MethodPost, "/upload-embedding/EMP-0404", body)
		c.Request.Header.Set("Content-Type", contentType)
		h.UploadEmbedding(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee not found")
	})
}
