package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"leaguecatalog/api/dto"
	"leaguecatalog/api/filters"
	championservice "leaguecatalog/api/services/champion"
	"leaguecatalog/pkg/database/models"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChampionService struct {
	mock.Mock
}

func (m *mockChampionService) ListChampions(ctx context.Context, filter *filters.ChampionListFilter) (*dto.ChampionPage, error) {
	args := m.Called(ctx, filter)
	page, _ := args.Get(0).(*dto.ChampionPage)
	return page, args.Error(1)
}

func (m *mockChampionService) GetChampionByName(ctx context.Context, name string) (*models.Champion, error) {
	args := m.Called(ctx, name)
	champion, _ := args.Get(0).(*models.Champion)
	return champion, args.Error(1)
}

func (m *mockChampionService) CreateChampion(ctx context.Context, input *championservice.CreateChampionInput) (*models.Champion, error) {
	args := m.Called(ctx, input)
	champion, _ := args.Get(0).(*models.Champion)
	return champion, args.Error(1)
}

func (m *mockChampionService) UpdateChampion(ctx context.Context, name string, input *championservice.UpdateChampionInput) (*models.Champion, error) {
	args := m.Called(ctx, name, input)
	champion, _ := args.Get(0).(*models.Champion)
	return champion, args.Error(1)
}

func (m *mockChampionService) DeleteChampion(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email string, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Signup(ctx context.Context, email string, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*models.User)
	return users, args.Error(1)
}

// Engine with the same paths the router exposes.
func setupTestEngine(champions *ChampionHandler, auth *AuthHandler, users *UserHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	if champions != nil {
		engine.GET("/api/champions", champions.ListChampions)
		engine.GET("/api/champions/:name", champions.GetChampion)
		engine.POST("/api/champions", champions.CreateChampion)
		engine.PUT("/api/champions/:name", champions.UpdateChampion)
		engine.DELETE("/api/champions/:name", champions.DeleteChampion)
	}
	if auth != nil {
		engine.POST("/api/auth/login", auth.Login)
	}
	if users != nil {
		engine.GET("/api/users", users.ListUsers)
		engine.POST("/api/users", users.Signup)
	}

	return engine
}

type formFile struct {
	filename    string
	contentType string
	content     []byte
}

// Image bigger than the whole body cap.
func oversizedImage() *formFile {
	return &formFile{
		filename:    "huge.png",
		contentType: "image/png",
		content:     bytes.Repeat([]byte{0}, championservice.MaxImageSize+maxFormOverhead+1),
	}
}

// Build a multipart request with the given fields and an optional image.
func newMultipartRequest(t *testing.T, method string, path string, fields map[string]string, image *formFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}

	if image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="`+image.filename+`"`)
		header.Set("Content-Type", image.contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image.content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newJSONRequest(t *testing.T, method string, path string, body any) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	raw, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
