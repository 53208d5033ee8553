package repositories

import (
	"biscenic-store/models"
	"context"
	"net/http"
	"net/url"
)

type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// Login returns the token and user directly: this endpoint does not use
// the standard backend envelope.
func (r *UserRepository) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var login models.LoginResponse
	if err := r.client.doJSON(ctx, http.MethodPost, "/users/login", "", req, &login, false); err != nil {
		return nil, err
	}
	return &login, nil
}

// CheckAdmin verifies the bearer token grants admin access. Unwrapped
// response, same as login.
func (r *UserRepository) CheckAdmin(ctx context.Context, token string) (*models.AdminCheckResponse, error) {
	var check models.AdminCheckResponse
	if err := r.client.doJSON(ctx, http.MethodGet, "/users/admin", token, nil, &check, false); err != nil {
		return nil, err
	}
	return &check, nil
}

func (r *UserRepository) GetAllUsers(ctx context.Context, token string) ([]models.User, error) {
	users := []models.User{}
	if err := r.client.doJSON(ctx, http.MethodGet, "/users/users", token, nil, &users, true); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, token, id string) error {
	return r.client.doJSON(ctx, http.MethodDelete, "/users/users/"+url.PathEscape(id), token, nil, nil, true)
}

func (r *UserRepository) UpdateUserRole(ctx context.Context, token, id string, req models.UpdateUserRoleRequest) (*models.User, error) {
	var user models.User
	if err := r.client.doJSON(ctx, http.MethodPut, "/users/users/"+url.PathEscape(id)+"/role", token, req, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}
