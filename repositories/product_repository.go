package repositories

import (
	"biscenic-store/models"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
)

type ProductRepository struct {
	client *Client
}

func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

func (r *ProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.client.getJSON(ctx, "/products", "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.client.getJSON(ctx, "/products/"+url.PathEscape(id), "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct forwards the admin's multipart form (name, description,
// price, stock, category, images) to the backend verbatim.
func (r *ProductRepository) CreateProduct(ctx context.Context, token string, fields url.Values, images []*multipart.FileHeader) (*models.Product, error) {
	var product models.Product
	if err := r.client.doMultipart(ctx, http.MethodPost, "/products", token, fields, images, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, token, id string, fields url.Values, images []*multipart.FileHeader) (*models.Product, error) {
	var product models.Product
	if err := r.client.doMultipart(ctx, http.MethodPut, "/products/"+url.PathEscape(id), token, fields, images, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) UpdateProductImages(ctx context.Context, token, id, existingImageIDs string, images []*multipart.FileHeader) (*models.Product, error) {
	fields := url.Values{}
	fields.Set("existingImageIds", existingImageIDs)

	var product models.Product
	if err := r.client.doMultipart(ctx, http.MethodPatch, "/products/"+url.PathEscape(id)+"/images", token, fields, images, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, token, id string) error {
	return r.client.doJSON(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), token, nil, nil, true)
}
