package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rocky2015aaa/bookshop/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Author{}, &model.Book{}, &model.InventoryEntry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	NewHealthHandler(db, time.Now(), "test").RegisterRoutes(r)

	root := r.Group("")
	NewAuthorHandler(db).RegisterRoutes(root)
	NewBookHandler(db).RegisterRoutes(root)
	NewInventoryHandler(db).RegisterRoutes(root)

	return r
}

func seedAuthor(t *testing.T, db *gorm.DB, name, birthDate string) model.Author {
	t.Helper()

	author := model.Author{Name: name, BirthDate: birthDate}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}
	return author
}

func seedBook(t *testing.T, db *gorm.DB, author model.Author, title string, year int, barcode string) model.Book {
	t.Helper()

	book := model.Book{
		Title:       title,
		PublishYear: year,
		AuthorID:    author.ID,
		Barcode:     barcode,
	}
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	return book
}

func seedEntry(t *testing.T, db *gorm.DB, book model.Book, quantity int, date string) {
	t.Helper()

	entry := model.InventoryEntry{BookID: book.ID, Quantity: quantity, Date: date}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("failed to seed entry for book %d: %v", book.ID, err)
	}
}

// envelope mirrors the success body with the payload left raw for the
// test to decode.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Status  bool            `json:"status"`
	Message string          `json:"message"`
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, _ := http.NewRequest(http.MethodGet, path, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to unmarshal envelope: %v, body=%s", err, w.Body.String())
	}
	if !env.Status {
		t.Fatalf("expected status true in envelope, body=%s", w.Body.String())
	}
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()

	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("failed to unmarshal envelope data: %v, data=%s", err, string(env.Data))
	}
}
