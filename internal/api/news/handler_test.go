package news

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"union-admin/internal/domain/content"
	"union-admin/internal/infra/blobstore"
	"union-admin/internal/infra/docstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *docstore.Store, *blobstore.Store, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&docstore.Document{}))

	blobRoot := t.TempDir()
	blobs, err := blobstore.New(blobRoot, "http://localhost:8080/uploads")
	require.NoError(t, err)

	docs := docstore.New(db)
	h := NewHandler(docs, blobs)

	r := gin.New()
	r.GET("/news", h.List)
	r.POST("/news", h.Create)
	r.PUT("/news/:id", h.Update)
	r.DELETE("/news/:id", h.Delete)
	return r, docs, blobs, blobRoot
}

// newsForm builds the multipart body the news form submits: a "data" JSON
// part plus an optional staged image.
func newsForm(t *testing.T, item content.News, imageName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	data, err := json.Marshal(item)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("data", string(data)))

	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("newimagebytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doForm(r *gin.Engine, method, url string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validNews() content.News {
	return content.News{
		Title:    content.LocalizedText{En: "Union signs agreement", Ar: "الاتحاد يوقع اتفاقية"},
		Content:  content.LocalizedText{En: "<p>details</p>", Ar: "<p>تفاصيل</p>"},
		Category: content.LocalizedText{En: "Economy", Ar: "اقتصاد"},
		Date:     time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestCreateSetsCreatedAt(t *testing.T) {
	r, docs, _, _ := newTestRouter(t)

	body, ct := newsForm(t, validNews(), "")
	w := doForm(r, http.MethodPost, "/news", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)

	var created Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.Data.CreatedAt.IsZero())

	records, err := docs.GetAll(context.Background(), content.NewsCollection)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	r, docs, _, _ := newTestRouter(t)
	ctx := context.Background()

	created := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	existing := validNews()
	existing.CreatedAt = created
	require.NoError(t, docs.Set(ctx, content.NewsCollection, "10", existing))

	draft := validNews()
	draft.Title.En = "Updated headline"
	draft.CreatedAt = time.Time{} // the form never sends it
	body, ct := newsForm(t, draft, "")
	w := doForm(r, http.MethodPut, "/news/10", body, ct)
	require.Equal(t, http.StatusOK, w.Code)

	raw, err := docs.GetOne(ctx, content.NewsCollection, "10")
	require.NoError(t, err)
	var stored content.News
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, "Updated headline", stored.Title.En)
	assert.True(t, stored.CreatedAt.Equal(created))
}

func TestUpdateReplacingOwnedImageDeletesOldExactlyOnce(t *testing.T) {
	r, docs, blobs, blobRoot := newTestRouter(t)
	ctx := context.Background()

	oldURL, err := blobs.Upload("images/old.jpg", strings.NewReader("oldimagebytes"))
	require.NoError(t, err)

	existing := validNews()
	existing.Img = oldURL
	require.NoError(t, docs.Set(ctx, content.NewsCollection, "20", existing))

	body, ct := newsForm(t, validNews(), "fresh.jpg")
	w := doForm(r, http.MethodPut, "/news/20", body, ct)
	require.Equal(t, http.StatusOK, w.Code)

	// old managed asset is gone
	_, err = os.Stat(filepath.Join(blobRoot, "images", "old.jpg"))
	assert.True(t, os.IsNotExist(err))

	// record now points at the new upload
	raw, err := docs.GetOne(ctx, content.NewsCollection, "20")
	require.NoError(t, err)
	var stored content.News
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.NotEqual(t, oldURL, stored.Img)
	assert.True(t, blobs.Owns(stored.Img))
	assert.Contains(t, stored.Img, "fresh.jpg")
}

func TestUpdateReplacingExternalImageLeavesItAlone(t *testing.T) {
	r, docs, blobs, _ := newTestRouter(t)
	ctx := context.Background()

	existing := validNews()
	existing.Img = "https://cdn.example.com/images/external.jpg"
	require.NoError(t, docs.Set(ctx, content.NewsCollection, "30", existing))

	body, ct := newsForm(t, validNews(), "fresh.jpg")
	w := doForm(r, http.MethodPut, "/news/30", body, ct)
	require.Equal(t, http.StatusOK, w.Code)

	raw, err := docs.GetOne(ctx, content.NewsCollection, "30")
	require.NoError(t, err)
	var stored content.News
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.True(t, blobs.Owns(stored.Img))
}

func TestCreateSanitizesRichTextContent(t *testing.T) {
	r, _, _, _ := newTestRouter(t)

	item := validNews()
	item.Content.En = `<p>story</p><script>alert(1)</script>`
	body, ct := newsForm(t, item, "")
	w := doForm(r, http.MethodPost, "/news", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)

	var created Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotContains(t, created.Data.Content.En, "<script>")
	assert.Contains(t, created.Data.Content.En, "<p>story</p>")
}

func TestDeleteNews(t *testing.T) {
	r, docs, _, _ := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, docs.Set(ctx, content.NewsCollection, "40", validNews()))

	req := httptest.NewRequest(http.MethodDelete, "/news/40", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	_, err := docs.GetOne(ctx, content.NewsCollection, "40")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}
