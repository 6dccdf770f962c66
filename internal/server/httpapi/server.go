// Package httpapi exposes the JSON REST API: the /api/auth endpoints, the
// authenticated catalog endpoints, and the bearer-token session guard in
// front of them.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cantina-pos/internal/logging"
	"cantina-pos/internal/server/config"
	"cantina-pos/internal/server/models"
	"cantina-pos/internal/server/services"
)

// UserService is the slice of the auth service the HTTP layer needs.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.UserSummary, error)
	Login(ctx context.Context, email, password string) (*models.UserSummary, string, error)
	VerifySession(ctx context.Context, token string) (*models.UserSummary, error)
}

type ProductService interface {
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
	GetImageUploadURL(ctx context.Context, productID string) (string, string, error)
	GetImageURL(ctx context.Context, productID string) (string, error)
}

type CustomerService interface {
	Create(ctx context.Context, c *models.Customer) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}

type SaleService interface {
	Create(ctx context.Context, customerID *string, items []services.SaleInput) (*models.Sale, error)
	List(ctx context.Context, limit int) ([]models.Sale, error)
}

// Server holds the route handlers and their dependencies.
type Server struct {
	address   string
	users     UserService
	products  ProductService
	customers CustomerService
	sales     SaleService
	limiter   *LoginLimiter
	logger    logging.Logger
	cfg       *config.Config
}

func NewServer(cfg *config.Config, l logging.Logger, us UserService, ps ProductService, cs CustomerService, ss SaleService, limiter *LoginLimiter) *Server {
	return &Server{
		address:   cfg.HTTPAddr,
		users:     us,
		products:  ps,
		customers: cs,
		sales:     ss,
		limiter:   limiter,
		logger:    l.With("module", "http_server"),
		cfg:       cfg,
	}
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Router builds the gin engine with all routes and middleware wired.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.corsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
		auth.GET("/verify", s.authRequired(), s.handleVerify)
		auth.GET("/profile", s.authRequired(), s.handleProfile)
	}

	api := r.Group("/api")
	api.Use(s.authRequired())
	{
		api.GET("/products", s.handleListProducts)
		api.POST("/products", s.handleCreateProduct)
		api.GET("/products/:id", s.handleGetProduct)
		api.PUT("/products/:id", s.handleUpdateProduct)
		api.DELETE("/products/:id", s.handleDeleteProduct)
		api.POST("/products/:id/image-upload", s.handleImageUpload)
		api.GET("/products/:id/image-url", s.handleImageURL)

		api.GET("/customers", s.handleListCustomers)
		api.POST("/customers", s.handleCreateCustomer)

		api.GET("/sales", s.handleListSales)
		api.POST("/sales", s.handleCreateSale)
	}

	return r
}
