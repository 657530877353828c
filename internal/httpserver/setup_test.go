package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mixmodas-api/internal/models"
	"mixmodas-api/internal/repo"
	"mixmodas-api/internal/service"
	"mixmodas-api/internal/upload"
)

type testEnv struct {
	T         *testing.T
	E         *echo.Echo
	Store     *repo.GormRepo
	UploadDir string
}

func buildEnv(t *testing.T, store *repo.GormRepo) *testEnv {
	t.Helper()

	uploadDir := filepath.Join(t.TempDir(), "uploads")
	e := echo.New()
	Register(e, &Deps{
		StatusHandler:   &StatusHTTP{Repo: store},
		ProductHandler:  &ProductHTTP{Svc: &service.CatalogService{Repo: store}, Uploads: &upload.Store{Dir: uploadDir}},
		AuthHandler:     &AuthHTTP{Svc: &service.AuthService{Repo: store}},
		WishlistHandler: &WishlistHTTP{Svc: &service.WishlistService{Repo: store}},
	})

	return &testEnv{T: t, E: e, Store: store, UploadDir: uploadDir}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Product{}, &models.WishlistEntry{}))

	return buildEnv(t, &repo.GormRepo{DB: gdb})
}

// newDegradedEnv simulates a store that never opened at startup.
func newDegradedEnv(t *testing.T) *testEnv {
	t.Helper()
	return buildEnv(t, &repo.GormRepo{})
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doGet(path string) *httptest.ResponseRecorder {
	return env.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (env *testEnv) doJSON(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return env.do(req)
}

func (env *testEnv) doForm(method, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return env.do(req)
}

func (env *testEnv) doMultipart(path string, fields map[string]string, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(env.T, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("imagem", fileName)
		require.NoError(env.T, err)
		_, err = part.Write(fileContent)
		require.NoError(env.T, err)
	}
	require.NoError(env.T, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return env.do(req)
}

func decodeBody(t *testing.T, r io.Reader, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r).Decode(out))
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	require.Equal(t, code, rec.Code)

	var body map[string]string
	decodeBody(t, rec.Body, &body)
	require.Equal(t, message, body["error"])
}
