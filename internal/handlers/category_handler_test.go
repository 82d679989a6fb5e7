package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
	"expensetracker/internal/services"
)

type mockCategoryService struct {
	listCategoriesFn func(ctx context.Context, username string) ([]models.Category, error)
	getCategoryFn    func(ctx context.Context, username, id string) (*models.Category, error)
	categoryExistsFn func(ctx context.Context, username, name string) (bool, error)
	createCategoryFn func(ctx context.Context, username, name, description, color string) (*models.Category, error)
	updateCategoryFn func(ctx context.Context, username, id, name, description, color string) (*models.Category, error)
	deleteCategoryFn func(ctx context.Context, username, id string) error
}

func (m *mockCategoryService) ListCategories(ctx context.Context, username string) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(ctx, username)
	}
	return nil, nil
}

func (m *mockCategoryService) GetCategory(ctx context.Context, username, id string) (*models.Category, error) {
	if m.getCategoryFn != nil {
		return m.getCategoryFn(ctx, username, id)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) CategoryExists(ctx context.Context, username, name string) (bool, error) {
	if m.categoryExistsFn != nil {
		return m.categoryExistsFn(ctx, username, name)
	}
	return false, nil
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, username, name, description, color string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(ctx, username, name, description, color)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, username, id, name, description, color string) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(ctx, username, id, name, description, color)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, username, id string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(ctx, username, id)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/categories", injectUser(testUserID, "alice"))
	g.GET("", handler.GetAllCategories)
	g.GET("/:id", handler.GetCategoryByID)
	g.POST("", handler.CreateCategory)
	g.PUT("/:id", handler.UpdateCategory)
	g.DELETE("/:id", handler.DeleteCategory)
	return r
}

func testCategory(name string) *models.Category {
	return &models.Category{Base: models.Base{ID: testCategoryID}, UserID: testUserID, Name: name, Color: "#FF5733"}
}

func TestCategoryHandler_GetAllCategories(t *testing.T) {
	svc := &mockCategoryService{
		listCategoriesFn: func(_ context.Context, username string) ([]models.Category, error) {
			if username != "alice" {
				t.Errorf("expected username alice, got %s", username)
			}
			return []models.Category{*testCategory("Food"), *testCategory("Travel")}, nil
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(svc))

	rec := doRequest(r, "GET", "/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if list := parseJSONArray(t, rec); len(list) != 2 {
		t.Errorf("expected 2 categories, got %d", len(list))
	}
}

func TestCategoryHandler_GetAllCategories_Empty(t *testing.T) {
	r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

	rec := doRequest(r, "GET", "/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Errorf("expected empty JSON array, got %s", rec.Body.String())
	}
}

func TestCategoryHandler_GetCategoryByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoryFn: func(_ context.Context, _, id string) (*models.Category, error) {
				if id != testCategoryID {
					t.Errorf("unexpected id %s", id)
				}
				return testCategory("Food"), nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["name"] != "Food" || result["id"] != testCategoryID {
			t.Errorf("unexpected category %v", result)
		}
		if _, ok := result["userId"]; ok {
			t.Error("category must not expose its owner")
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoryFn: func(context.Context, string, string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})

	t.Run("malformed id", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "GET", "/categories/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertFieldError(t, parseJSON(t, rec), "id")
	})
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(_ context.Context, _, name, description, color string) (*models.Category, error) {
				c := testCategory(name)
				c.Description, c.Color = description, color
				return c, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","description":"Groceries","color":"#00ff00"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != "Food" || result["description"] != "Groceries" || result["color"] != "#00ff00" {
			t.Errorf("unexpected category %v", result)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(context.Context, string, string, string, string) (*models.Category, error) {
				return nil, apperrors.ErrDuplicateCategory
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "POST", "/categories", `{"name":"Food"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_CATEGORY")
	})

	t.Run("invalid payload", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "POST", "/categories", `{"color":"red"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertFieldError(t, result, "name")
		assertFieldError(t, result, "color")
	})
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	svc := &mockCategoryService{
		updateCategoryFn: func(_ context.Context, _, id, name, _, _ string) (*models.Category, error) {
			if id != testCategoryID {
				return nil, apperrors.ErrCategoryNotFound
			}
			return testCategory(name), nil
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(svc))

	rec := doRequest(r, "PUT", "/categories/"+testCategoryID, `{"name":"Dining"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if name := parseJSON(t, rec)["name"]; name != "Dining" {
		t.Errorf("expected renamed category, got %v", name)
	}

	rec = doRequest(r, "PUT", "/categories/"+testExpenseID, `{"name":"Dining"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns 204", func(t *testing.T) {
		var deleted string
		svc := &mockCategoryService{
			deleteCategoryFn: func(_ context.Context, _, id string) error {
				deleted = id
				return nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if deleted != testCategoryID {
			t.Errorf("expected %s deleted, got %s", testCategoryID, deleted)
		}
	})

	t.Run("in use", func(t *testing.T) {
		svc := &mockCategoryService{
			deleteCategoryFn: func(context.Context, string, string) error {
				return apperrors.ErrCategoryInUse
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_IN_USE")
	})
}
