package repositories

import (
	"biscenic-store/models"
	"context"
	"net/http"
	"net/url"
)

type CategoryRepository struct {
	client *Client
}

func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

func (r *CategoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.client.getJSON(ctx, "/categories", "", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.client.getJSON(ctx, "/categories/"+url.PathEscape(id), "", &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, token string, req models.CategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := r.client.doJSON(ctx, http.MethodPost, "/categories", token, req, &category, true); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, token, id string, req models.CategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := r.client.doJSON(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), token, req, &category, true); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, token, id string) error {
	return r.client.doJSON(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), token, nil, nil, true)
}
