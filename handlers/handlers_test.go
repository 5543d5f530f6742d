package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"agriadmin/models"
	"agriadmin/services"
	"agriadmin/storage"
	"agriadmin/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(); err != nil {
		panic(err)
	}
}

func perform(r http.Handler, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: plant 9", services.ErrInvalidInput), http.StatusBadRequest},
		{services.ErrUnauthorized, http.StatusUnauthorized},
		{services.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("%w: farm 000001", services.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: phone taken", services.ErrConflict), http.StatusConflict},
		{fmt.Errorf("farms: %w", storage.ErrAllocationExhausted), http.StatusServiceUnavailable},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

type fakeUsers struct {
	created models.CreateUserRequest
	deleted int64
	err     error
}

func (f *fakeUsers) List(context.Context, models.UserFilter) ([]models.User, error) {
	return []models.User{{UserID: 482913, PhoneNumber: "9876543210", Name: "Ravi", CategoryID: 1, Category: "Farmer"}}, f.err
}

func (f *fakeUsers) Get(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{UserID: id}, nil
}

func (f *fakeUsers) Create(_ context.Context, req models.CreateUserRequest) (int64, error) {
	f.created = req
	return 482913, f.err
}

func (f *fakeUsers) Update(context.Context, int64, models.UpdateUserRequest) error { return f.err }

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	f.deleted = id
	return f.err
}

func userRouter(store UserStore) *gin.Engine {
	r := gin.New()
	r.GET("/users", GetUsers(store))
	r.GET("/users/export", ExportUsers(store))
	r.GET("/users/:userid", GetUser(store))
	r.POST("/users", CreateUser(store))
	r.DELETE("/users/:userid", DeleteUser(store))
	return r
}

func TestCreateUser(t *testing.T) {
	store := &fakeUsers{}
	r := userRouter(store)

	w := perform(r, http.MethodPost, "/users", jsonBody(t, map[string]any{
		"phone_number": "9876543210",
		"name":         "Ravi Kumar",
		"password":     "secret123",
		"category_id":  1,
		"pincode":      "560001",
	}), "application/json")

	require.Equal(t, http.StatusCreated, w.Code)
	var resp models.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "482913", resp.ID)
	assert.Equal(t, "Ravi Kumar", store.created.Name)
}

func TestCreateUserValidation(t *testing.T) {
	r := userRouter(&fakeUsers{})

	cases := map[string]map[string]any{
		"bad phone":      {"phone_number": "12ab", "name": "A", "password": "secret123", "category_id": 1},
		"bad pincode":    {"phone_number": "9876543210", "name": "A", "password": "secret123", "category_id": 1, "pincode": "012345"},
		"short password": {"phone_number": "9876543210", "name": "A", "password": "123", "category_id": 1},
		"missing name":   {"phone_number": "9876543210", "password": "secret123", "category_id": 1},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := perform(r, http.MethodPost, "/users", jsonBody(t, body), "application/json")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid user details", decodeError(t, w).Message)
		})
	}
}

func TestCreateUserConflict(t *testing.T) {
	r := userRouter(&fakeUsers{err: fmt.Errorf("%w: phone number already registered", services.ErrConflict)})

	w := perform(r, http.MethodPost, "/users", jsonBody(t, map[string]any{
		"phone_number": "9876543210", "name": "A", "password": "secret123", "category_id": 1,
	}), "application/json")

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Failed to create user", resp.Message)
	assert.Contains(t, resp.Error, "already registered")
}

func TestUserIDParam(t *testing.T) {
	store := &fakeUsers{}
	r := userRouter(store)

	for _, path := range []string{"/users/abc", "/users/0", "/users/-4"} {
		w := perform(r, http.MethodDelete, path, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	assert.Zero(t, store.deleted)

	w := perform(r, http.MethodDelete, "/users/482913", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(482913), store.deleted)
}

func TestGetUserNotFound(t *testing.T) {
	r := userRouter(&fakeUsers{err: fmt.Errorf("%w: user 5", services.ErrNotFound)})

	w := perform(r, http.MethodGet, "/users/100005", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServerErrorCarriesDetail(t *testing.T) {
	r := userRouter(&fakeUsers{err: errors.New("pq: connection refused")})

	w := perform(r, http.MethodGet, "/users", nil, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "pq: connection refused", decodeError(t, w).Error)
}

func TestExportUsers(t *testing.T) {
	r := userRouter(&fakeUsers{})

	w := perform(r, http.MethodGet, "/users/export", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, services.XLSXContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "users.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

type fakeAuth struct {
	err error
}

func (f fakeAuth) Login(context.Context, models.LoginRequest) (string, error) { return "session", f.err }

func (f fakeAuth) IssuePair(context.Context, models.LoginRequest) (models.TokenPairResponse, error) {
	return models.TokenPairResponse{AccessToken: "a", RefreshToken: "r"}, f.err
}

func (f fakeAuth) Refresh(context.Context, string) (string, error) { return "a2", f.err }

func TestAuthHandlers(t *testing.T) {
	creds := map[string]any{"phone_number": "9876543210", "password": "secret123", "platform": "web"}

	t.Run("login", func(t *testing.T) {
		r := gin.New()
		r.POST("/login", Login(fakeAuth{}))
		w := perform(r, http.MethodPost, "/login", jsonBody(t, creds), "application/json")
		require.Equal(t, http.StatusOK, w.Code)
		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "session", resp.Token)
		assert.Equal(t, "Login successful", resp.Message)
	})

	t.Run("bad credentials", func(t *testing.T) {
		r := gin.New()
		r.POST("/login", Login(fakeAuth{err: services.ErrUnauthorized}))
		w := perform(r, http.MethodPost, "/login", jsonBody(t, creds), "application/json")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown platform", func(t *testing.T) {
		r := gin.New()
		r.POST("/auth/login", TokenLogin(fakeAuth{}))
		body := map[string]any{"phone_number": "9876543210", "password": "secret123", "platform": "desktop"}
		w := perform(r, http.MethodPost, "/auth/login", jsonBody(t, body), "application/json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("refresh without token", func(t *testing.T) {
		r := gin.New()
		r.POST("/auth/refresh", RefreshToken(fakeAuth{}))
		w := perform(r, http.MethodPost, "/auth/refresh", jsonBody(t, map[string]any{}), "application/json")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "No token provided", decodeError(t, w).Message)
	})

	t.Run("refresh", func(t *testing.T) {
		r := gin.New()
		r.POST("/auth/refresh", RefreshToken(fakeAuth{}))
		w := perform(r, http.MethodPost, "/auth/refresh", jsonBody(t, map[string]any{"refreshToken": "r"}), "application/json")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"accessToken":"a2"}`, w.Body.String())
	})
}

type fakeCatalog struct {
	items   []models.SoilType
	deleted int64
	err     error
}

func (f *fakeCatalog) List(context.Context) ([]models.SoilType, error) { return f.items, f.err }

func (f *fakeCatalog) Add(_ context.Context, item models.SoilType) (models.SoilType, error) {
	item.SoilTypeID = 10231
	return item, f.err
}

func (f *fakeCatalog) Delete(_ context.Context, id int64) error {
	f.deleted = id
	return f.err
}

func TestMasterHandlers(t *testing.T) {
	cat := &fakeCatalog{items: []models.SoilType{{SoilTypeID: 10231, Name: "Red Soil"}}}
	r := gin.New()
	r.GET("/soiltypes", ListMasters[models.SoilType](cat, "soil type"))
	r.POST("/soiltypes", AddMaster[models.SoilType](cat, "soil type"))
	r.DELETE("/soiltypes/:id", DeleteMaster[models.SoilType](cat, "soil type"))

	w := perform(r, http.MethodGet, "/soiltypes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"soil_type_id":10231,"name":"Red Soil"}]`, w.Body.String())

	w = perform(r, http.MethodPost, "/soiltypes", jsonBody(t, map[string]any{"name": "Black Soil"}), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"soil_type_id":10231,"name":"Black Soil"}`, w.Body.String())

	w = perform(r, http.MethodPost, "/soiltypes", jsonBody(t, map[string]any{}), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodDelete, "/soiltypes/10231", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(10231), cat.deleted)
	assert.JSONEq(t, `{"message":"Deleted soil type 10231"}`, w.Body.String())

	cat.err = fmt.Errorf("%w: still referenced (farm_soil_type_fk)", services.ErrConflict)
	w = perform(r, http.MethodDelete, "/soiltypes/10231", nil, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

type fakeImages struct {
	added    models.ImageRequest
	uploaded struct {
		cropID, filename, contentType string
		data                          []byte
	}
}

func (f *fakeImages) List(context.Context, models.ImageFilter) ([]models.Image, error) {
	return nil, nil
}

func (f *fakeImages) Add(_ context.Context, req models.ImageRequest) (*models.Image, error) {
	f.added = req
	return &models.Image{ImageID: 55120, CropID: req.CropID, ImageURL: req.ImageURL}, nil
}

func (f *fakeImages) Upload(_ context.Context, cropID, filename, contentType string, _ int64, body io.Reader) (*models.Image, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	f.uploaded.cropID, f.uploaded.filename, f.uploaded.contentType, f.uploaded.data = cropID, filename, contentType, data
	return &models.Image{ImageID: 55121, CropID: cropID, ImageURL: "http://minio.local/" + filename}, nil
}

func TestAddImageJSON(t *testing.T) {
	store := &fakeImages{}
	r := gin.New()
	r.POST("/addimages", AddImage(store))

	w := perform(r, http.MethodPost, "/addimages", jsonBody(t, map[string]any{
		"crop_id":   "004512",
		"image_url": "https://cdn.example.com/leaf.jpg",
	}), "application/json")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "004512", store.added.CropID)
	assert.Equal(t, "https://cdn.example.com/leaf.jpg", store.added.ImageURL)
}

func TestAddImageMultipart(t *testing.T) {
	store := &fakeImages{}
	r := gin.New()
	r.POST("/addimages", AddImage(store))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("crop_id", "004512"))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="leaf.jpg"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte{0xff, 0xd8, 0xff, 0xe0})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := perform(r, http.MethodPost, "/addimages", &body, mw.FormDataContentType())

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "004512", store.uploaded.cropID)
	assert.Equal(t, "leaf.jpg", store.uploaded.filename)
	assert.Equal(t, "image/jpeg", store.uploaded.contentType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff, 0xe0}, store.uploaded.data)
}

func TestAddImageMultipartWithoutFile(t *testing.T) {
	r := gin.New()
	r.POST("/addimages", AddImage(&fakeImages{}))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("crop_id", "004512"))
	require.NoError(t, mw.Close())

	w := perform(r, http.MethodPost, "/addimages", &body, mw.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "image file is required", decodeError(t, w).Message)
}

type fakeAnalysis struct {
	list []models.AnalysisResult
}

func (f fakeAnalysis) List(context.Context, models.AnalysisFilter) ([]models.AnalysisResult, error) {
	return f.list, nil
}

func (f fakeAnalysis) Create(context.Context, models.AnalysisRequest) (int64, error) {
	return 77310, nil
}

func TestAnalysisReportHandler(t *testing.T) {
	r := gin.New()
	r.GET("/report", AnalysisReport(fakeAnalysis{list: []models.AnalysisResult{{ID: 77310, CropID: "004512"}}}))

	w := perform(r, http.MethodGet, "/report", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}
