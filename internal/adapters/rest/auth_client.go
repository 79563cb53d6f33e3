package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
)

// AuthClient logs the operator in against POST /auth/login.
type AuthClient struct {
	client *Client
}

var _ ports.AuthGateway = (*AuthClient)(nil)

// NewAuthClient expects an anonymous client (no token source).
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
	Data  *struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	} `json:"data"`
}

func (a *AuthClient) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	var resp loginResponse
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("login: %w", err)
	}
	if resp.Data != nil && resp.Token == "" {
		return resp.Data.Token, resp.Data.User, nil
	}
	if resp.Token == "" {
		return "", domain.User{}, fmt.Errorf("login: backend returned no token")
	}
	return resp.Token, resp.User, nil
}
