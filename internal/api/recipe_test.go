package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/likelion-hsu/recipememo/backend/internal/middleware"
	"github.com/likelion-hsu/recipememo/backend/internal/mocks"
	"github.com/likelion-hsu/recipememo/backend/internal/model"
	"github.com/likelion-hsu/recipememo/backend/internal/service"
	"github.com/likelion-hsu/recipememo/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRecipeTestRouter(svc service.IRecipeService, maxUploadSize int64) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	NewRecipeHandler(svc, nil, maxUploadSize).RegisterRoutes(router.Group("/api"))
	return router
}

// multipartBody builds a form with the recipe JSON and, if image is non-nil, an imageFile part.
func multipartBody(t *testing.T, recipeJSON string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("recipe", recipeJSON))
	if image != nil {
		part, err := w.CreateFormFile("imageFile", "stew.jpg")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func sampleRecipe() *model.Recipe {
	url := "/uploads/abc_stew.jpg"
	return &model.Recipe{
		ID:          uuid.New(),
		Title:       "Kimchi Stew",
		Category:    model.Korean,
		CookingTime: "30분",
		Difficulty:  "쉬움",
		Content:     "memo",
		ImageURL:    &url,
		FirebaseUID: "uid-123",
		Ingredients: []string{"kimchi", "pork"},
		Steps:       []string{"fry", "simmer"},
	}
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) middleware.ErrorResponse {
	t.Helper()
	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateRecipe(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 1<<20)
	recipe := sampleRecipe()

	var gotReq *types.RecipeRequest
	var gotImage []byte
	svc.On("CreateRecipe", mock.Anything, mock.AnythingOfType("*types.RecipeRequest"), mock.AnythingOfType("*types.ImageUpload")).
		Run(func(args mock.Arguments) {
			gotReq = args.Get(1).(*types.RecipeRequest)
			image := args.Get(2).(*types.ImageUpload)
			gotImage, _ = io.ReadAll(image.Content)
		}).
		Return(recipe, nil)

	body, contentType := multipartBody(t,
		`{"title":"Kimchi Stew","category":"한식","ingredients":["kimchi","pork"],"steps":["fry","simmer"],"firebaseUid":"uid-123","unknown":true}`,
		[]byte("jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/recipes", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, gotReq)
	assert.Equal(t, "Kimchi Stew", gotReq.Title)
	assert.Equal(t, "한식", gotReq.Category)
	assert.Equal(t, []string{"kimchi", "pork"}, gotReq.Ingredients)
	assert.Equal(t, "jpeg-bytes", string(gotImage))

	var resp types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, recipe.ID, resp.ID)
	assert.Equal(t, "한식", resp.Category)
	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "/uploads/abc_stew.jpg", *resp.ImageURL)
	svc.AssertExpectations(t)
}

func TestCreateRecipeWithoutImage(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 1<<20)

	svc.On("CreateRecipe", mock.Anything, mock.Anything, (*types.ImageUpload)(nil)).Return(sampleRecipe(), nil)

	body, contentType := multipartBody(t, `{"title":"Kimchi Stew","category":"한식","firebaseUid":"uid-123"}`, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/recipes", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestCreateRecipeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		recipeJSON string
		image      []byte
		maxSize    int64
		wantStatus int
		wantCode   string
	}{
		{"malformed json", `{"title":`, nil, 1 << 20, http.StatusBadRequest, "malformed_request"},
		{"upload too large", `{"title":"x","category":"한식","firebaseUid":"u"}`, bytes.Repeat([]byte("a"), 4096), 1024, http.StatusRequestEntityTooLarge, "payload_too_large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockRecipeService)
			router := setupRecipeTestRouter(svc, tt.maxSize)

			body, contentType := multipartBody(t, tt.recipeJSON, tt.image)
			req := httptest.NewRequest(http.MethodPost, "/api/recipes", body)
			req.Header.Set("Content-Type", contentType)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeErrorBody(t, w).Error)
			svc.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateRecipeMissingRecipePart(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 1<<20)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/recipes", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid category", fmt.Errorf("%w: %q", model.ErrInvalidCategory, "멕시코식"), http.StatusBadRequest, "invalid_category"},
		{"missing owner", service.ErrMissingOwner, http.StatusBadRequest, "malformed_request"},
		{"io failure", fmt.Errorf("%w: disk full", service.ErrIOFailure), http.StatusInternalServerError, "io_failure"},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockRecipeService)
			router := setupRecipeTestRouter(svc, 1<<20)
			svc.On("CreateRecipe", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			body, contentType := multipartBody(t, `{"title":"x","category":"한식"}`, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/recipes", body)
			req.Header.Set("Content-Type", contentType)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeErrorBody(t, w).Error)
		})
	}
}

func TestGetTitlesByCategory(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 0)
	id := uuid.New()

	svc.On("GetTitlesByCategory", mock.Anything, model.Korean).Return(&types.RecipeListResponse{
		Category: "한식",
		Recipes:  []types.RecipeTitleResponse{{ID: id, Title: "Bibimbap"}},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/category/korean", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp types.RecipeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "한식", resp.Category)
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, id, resp.Recipes[0].ID)
	assert.Nil(t, resp.Recipes[0].ImageURL)
}

func TestGetTitlesByUnknownCategory(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/category/MEXICAN", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_category", decodeErrorBody(t, w).Error)
}

func TestGetRecipeByCategoryAndID(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 0)
	recipe := sampleRecipe()
	missing := uuid.New()

	svc.On("GetRecipeByCategoryAndID", mock.Anything, model.Korean, recipe.ID).Return(recipe, nil)
	svc.On("GetRecipeByCategoryAndID", mock.Anything, model.Japanese, missing).Return(nil, service.ErrNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/category/KOREAN/"+recipe.ID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var resp types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"fry", "simmer"}, resp.Steps)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/category/japanese/"+missing.String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeErrorBody(t, w).Error)
}

func TestSearchRecipes(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 0)

	svc.On("SearchRecipesByTitle", mock.Anything, "김치").Return([]types.RecipeTitleResponse{{ID: uuid.New(), Title: "김치찌개"}}, nil)
	svc.On("SearchRecipesByTitle", mock.Anything, "").Return(nil, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/search?title=%EA%B9%80%EC%B9%98", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var resp types.RecipeSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "김치찌개", resp.Results[0].Title)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/search?title=", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[]}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/search", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipesByUser(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 0)

	svc.On("GetRecipesByFirebaseUID", mock.Anything, "abc123").Return([]types.RecipeTitleResponse{{ID: uuid.New(), Title: "Sushi"}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/user/abc123", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []types.RecipeTitleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Sushi", resp[0].Title)
}

func TestUpdateRecipe(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 1<<20)
	recipe := sampleRecipe()
	missing := uuid.New()

	svc.On("UpdateRecipe", mock.Anything, recipe.ID, mock.AnythingOfType("*types.RecipeRequest"), (*types.ImageUpload)(nil)).Return(recipe, nil)
	svc.On("UpdateRecipe", mock.Anything, missing, mock.Anything, mock.Anything).Return(nil, service.ErrNotFound)

	body, contentType := multipartBody(t, `{"title":"Kimchi Stew","category":"한식"}`, nil)
	req := httptest.NewRequest(http.MethodPut, "/api/recipes/"+recipe.ID.String(), body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	body, contentType = multipartBody(t, `{"title":"Kimchi Stew","category":"한식"}`, nil)
	req = httptest.NewRequest(http.MethodPut, "/api/recipes/"+missing.String(), body)
	req.Header.Set("Content-Type", contentType)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipe(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 0)
	id := uuid.New()
	missing := uuid.New()

	svc.On("DeleteRecipe", mock.Anything, id).Return(nil)
	svc.On("DeleteRecipe", mock.Anything, missing).Return(service.ErrNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/recipes/"+id.String(), nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/recipes/"+missing.String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecipeByID(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	router := setupRecipeTestRouter(svc, 0)
	recipe := sampleRecipe()

	svc.On("GetRecipeByID", mock.Anything, recipe.ID).Return(recipe, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/"+recipe.ID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", decodeErrorBody(t, w).Error)
}

func TestRecipeHealth(t *testing.T) {
	router := setupRecipeTestRouter(new(mocks.MockRecipeService), 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipes/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"OK"`)
}
