package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
)

type failingTokenSource struct{}

func (failingTokenSource) Token() (*oauth2.Token, error) { return nil, apperrors.ErrUnauthenticated }

type ResourceClientTestSuite struct {
	suite.Suite
	router     *gin.Engine
	server     *httptest.Server
	lastAuth   string
	lastQuery  string
	lastMethod string
}

func (s *ResourceClientTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		s.lastAuth = c.GetHeader("Authorization")
		s.lastQuery = c.Request.URL.RawQuery
		s.lastMethod = c.Request.Method
		c.Next()
	})
	s.server = httptest.NewServer(s.router)
}

func (s *ResourceClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ResourceClientTestSuite) newClient(ts oauth2.TokenSource) *Client {
	c, err := NewClient(Config{BaseURL: s.server.URL + "/api", TokenSource: ts}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	return c
}

func (s *ResourceClientTestSuite) TestList_TopLevelEnvelope() {
	s.router.GET("/api/water-supply/customers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data": []gin.H{
				{"id": "c1", "name": "Amina", "unitPrice": "2.5", "startingReading": "100"},
				{"id": "c2", "name": "Baraka", "unitPrice": "3", "startingReading": "0"},
			},
			"pagination": gin.H{"currentPage": 1, "totalPages": 1, "totalItems": 2, "itemsPerPage": 10},
		})
	})
	rc := NewResourceClient[domain.WaterSupplyCustomer](s.newClient(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok"})), ResourceConfig{
		Name: "customers", Path: "/water-supply/customers",
	})

	page, err := rc.List(context.Background(), domain.ListQuery{Page: 1, PerPage: 10, Filters: map[string]string{"search": "am"}})

	s.Require().NoError(err)
	s.Len(page.Data, 2)
	s.Equal("c1", page.Data[0].ID)
	s.True(page.Data[0].UnitPrice.Equal(decimal.RequireFromString("2.5")))
	s.Equal(domain.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 2, ItemsPerPage: 10}, page.Pagination)
	s.Equal("Bearer tok", s.lastAuth)
	s.Equal("page=1&perPage=10&search=am", s.lastQuery)
}

func (s *ResourceClientTestSuite) TestList_NestedEnvelopeIsNormalized() {
	s.router.GET("/api/banking/transactions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"transactions": []gin.H{{"id": "t1", "accountId": "a1", "type": "deposit", "amount": "50", "date": "2024-01-02"}},
				"pagination":   gin.H{"currentPage": 2, "totalPages": 9, "totalItems": 11, "itemsPerPage": 10},
			},
		})
	})
	rc := NewResourceClient[domain.BankTransaction](s.newClient(nil), ResourceConfig{
		Name: "transactions", Path: "/banking/transactions", Envelope: EnvelopeNested, ItemsKey: "transactions",
	})

	page, err := rc.List(context.Background(), domain.ListQuery{Page: 2, PerPage: 10})

	s.Require().NoError(err)
	s.Require().Len(page.Data, 1)
	s.Equal("a1", page.Data[0].AccountID)
	s.Equal("2024-01-02", page.Data[0].Date.String())
	s.Equal(2, page.Pagination.TotalPages)
	s.Equal(2, page.Pagination.CurrentPage)
	s.Empty(s.lastAuth)
}

func (s *ResourceClientTestSuite) TestList_OversizedPageKeepsRowsWithinPageSize() {
	s.router.GET("/api/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data":       []gin.H{{"id": "u1"}, {"id": "u2"}, {"id": "u3"}},
			"pagination": gin.H{"currentPage": 1, "totalPages": 2, "totalItems": 3, "itemsPerPage": 2},
		})
	})
	rc := NewResourceClient[domain.User](s.newClient(nil), ResourceConfig{Name: "users", Path: "/users"})

	page, err := rc.List(context.Background(), domain.ListQuery{Page: 1, PerPage: 2})

	s.Require().NoError(err)
	s.Len(page.Data, 3)
	s.LessOrEqual(len(page.Data), page.Pagination.ItemsPerPage)
	s.Equal(domain.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 3, ItemsPerPage: 3}, page.Pagination)
}

func (s *ResourceClientTestSuite) TestList_MissingPaginationSynthesized() {
	s.router.GET("/api/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []gin.H{{"id": "u1"}}})
	})
	rc := NewResourceClient[domain.User](s.newClient(nil), ResourceConfig{Name: "users", Path: "/users"})

	page, err := rc.List(context.Background(), domain.ListQuery{PerPage: 10})

	s.Require().NoError(err)
	s.Equal(domain.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 10}, page.Pagination)
}

func (s *ResourceClientTestSuite) TestGetByID_NotFound() {
	s.router.GET("/api/users/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	})
	rc := NewResourceClient[domain.User](s.newClient(nil), ResourceConfig{Name: "users", Path: "/users"})

	_, err := rc.GetByID(context.Background(), "missing")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	var nf *apperrors.NotFoundError
	s.Require().ErrorAs(err, &nf)
	s.Equal("missing", nf.ID)
	s.Equal("User not found", apperrors.Normalize(err, "fallback"))
}

func (s *ResourceClientTestSuite) TestGetByID_UnwrapsDataEnvelope() {
	s.router.GET("/api/users/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": c.Param("id"), "name": "Neema"}})
	})
	rc := NewResourceClient[domain.User](s.newClient(nil), ResourceConfig{Name: "users", Path: "/users"})

	u, err := rc.GetByID(context.Background(), "u9")

	s.Require().NoError(err)
	s.Equal("u9", u.ID)
	s.Equal("Neema", u.Name)
}

func (s *ResourceClientTestSuite) TestCreate_ValidationError() {
	s.router.POST("/api/users", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"email": []string{"Email already taken"}}})
	})
	rc := NewResourceClient[domain.User](s.newClient(nil), ResourceConfig{Name: "users", Path: "/users"})

	_, err := rc.Create(context.Background(), domain.User{Name: "x"})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal("Email already taken", apperrors.Normalize(err, "Failed to create user"))
}

func (s *ResourceClientTestSuite) TestUpdate_SendsPatchAndReturnsServerRecord() {
	s.router.PUT("/api/users/:id", func(c *gin.Context) {
		var body map[string]any
		s.Require().NoError(c.ShouldBindJSON(&body))
		s.Equal(map[string]any{"name": "Renamed"}, body)
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "name": "Renamed", "email": "server@computed"})
	})
	rc := NewResourceClient[domain.User](s.newClient(nil), ResourceConfig{Name: "users", Path: "/users"})

	name := "Renamed"
	u, err := rc.Update(context.Background(), "u1", struct {
		Name *string `json:"name,omitempty"`
		Role *string `json:"role,omitempty"`
	}{Name: &name})

	s.Require().NoError(err)
	s.Equal("server@computed", u.Email)
	s.Equal(http.MethodPut, s.lastMethod)
}

func (s *ResourceClientTestSuite) TestDelete() {
	s.router.DELETE("/api/users/:id", func(c *gin.Context) {
		if c.Param("id") == "gone" {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		c.Status(http.StatusNoContent)
	})
	rc := NewResourceClient[domain.User](s.newClient(nil), ResourceConfig{Name: "users", Path: "/users"})

	s.NoError(rc.Delete(context.Background(), "u1"))
	s.ErrorIs(rc.Delete(context.Background(), "gone"), apperrors.ErrNotFound)
}

func (s *ResourceClientTestSuite) TestServerErrorWithoutBody() {
	s.router.GET("/api/users", func(c *gin.Context) {
		c.Status(http.StatusBadGateway)
	})
	rc := NewResourceClient[domain.User](s.newClient(nil), ResourceConfig{Name: "users", Path: "/users"})

	_, err := rc.List(context.Background(), domain.ListQuery{})

	var srv *apperrors.ServerError
	s.Require().ErrorAs(err, &srv)
	s.Equal(http.StatusBadGateway, srv.Status)
	s.Equal("Bad Gateway", apperrors.Normalize(err, "Failed to fetch users"))
}

func (s *ResourceClientTestSuite) TestNetworkError() {
	rc := NewResourceClient[domain.BankAccount](s.newClient(nil), ResourceConfig{Name: "accounts", Path: "/banking/accounts"})
	s.server.Close()

	_, err := rc.List(context.Background(), domain.ListQuery{})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNetwork)
	s.Equal("Failed to fetch accounts", apperrors.Normalize(err, "Failed to fetch accounts"))
}

func (s *ResourceClientTestSuite) TestMissingSessionIsUnauthorized() {
	s.router.GET("/api/users", func(c *gin.Context) {
		s.Fail("request must not reach the backend")
	})
	rc := NewResourceClient[domain.User](s.newClient(failingTokenSource{}), ResourceConfig{Name: "users", Path: "/users"})

	_, err := rc.List(context.Background(), domain.ListQuery{})

	var srv *apperrors.ServerError
	s.Require().ErrorAs(err, &srv)
	s.Equal(http.StatusUnauthorized, srv.Status)
	s.False(errors.Is(err, apperrors.ErrNetwork))
}

func (s *ResourceClientTestSuite) TestLogin() {
	s.router.POST("/api/auth/login", func(c *gin.Context) {
		var body loginRequest
		s.Require().NoError(c.ShouldBindJSON(&body))
		if body.Password != "secret" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": "jwt-token", "user": gin.H{"id": "u1", "email": body.Email, "role": "admin"}})
	})
	auth := NewAuthClient(s.newClient(nil))

	token, user, err := auth.Login(context.Background(), "ops@example.com", "secret")
	s.Require().NoError(err)
	s.Equal("jwt-token", token)
	s.Equal(domain.RoleAdmin, user.Role)

	_, _, err = auth.Login(context.Background(), "ops@example.com", "wrong")
	s.Require().Error(err)
	s.Equal("Invalid credentials", apperrors.Normalize(err, "Login failed"))
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	if err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestResourceClientTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceClientTestSuite))
}
