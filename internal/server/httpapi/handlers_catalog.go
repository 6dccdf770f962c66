package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cantina-pos/internal/common"
	"cantina-pos/internal/server/models"
	"cantina-pos/internal/server/services"
)

type productRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Stock      int    `json:"stock"`
}

func (s *Server) handleListProducts(c *gin.Context) {
	items, err := s.products.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "list products failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := s.products.Create(c.Request.Context(), &models.Product{
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Stock:      req.Stock,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			respondError(c, http.StatusBadRequest, "name is required and price/stock must not be negative")
			return
		}
		s.logger.Error(c.Request.Context(), "create product failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) handleGetProduct(c *gin.Context) {
	p, err := s.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		s.logger.Error(c.Request.Context(), "get product failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}

	err := s.products.Update(c.Request.Context(), &models.Product{
		ID:         c.Param("id"),
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Stock:      req.Stock,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			respondError(c, http.StatusNotFound, "product not found")
		case errors.Is(err, common.ErrorValidation):
			respondError(c, http.StatusBadRequest, "name is required and price/stock must not be negative")
		default:
			s.logger.Error(c.Request.Context(), "update product failed", "error", err)
			respondError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	if err := s.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		s.logger.Error(c.Request.Context(), "delete product failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleImageUpload(c *gin.Context) {
	key, url, err := s.products.GetImageUploadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		s.logger.Error(c.Request.Context(), "image upload url failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

func (s *Server) handleImageURL(c *gin.Context) {
	url, err := s.products.GetImageURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "product image not found")
			return
		}
		s.logger.Error(c.Request.Context(), "image url failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (s *Server) handleListCustomers(c *gin.Context) {
	items, err := s.customers.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "list customers failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": items})
}

func (s *Server) handleCreateCustomer(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}

	customer, err := s.customers.Create(c.Request.Context(), &models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			respondError(c, http.StatusBadRequest, "name is required")
			return
		}
		s.logger.Error(c.Request.Context(), "create customer failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (s *Server) handleListSales(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	items, err := s.sales.List(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error(c.Request.Context(), "list sales failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales": items})
}

func (s *Server) handleCreateSale(c *gin.Context) {
	var req struct {
		CustomerID *string              `json:"customer_id"`
		Items      []services.SaleInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}

	sale, err := s.sales.Create(c.Request.Context(), req.CustomerID, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			respondError(c, http.StatusBadRequest, "items are required and quantities must be positive")
		case errors.Is(err, common.ErrorNotFound):
			respondError(c, http.StatusBadRequest, "unknown product in sale")
		case errors.Is(err, common.ErrorInsufficientStock):
			respondError(c, http.StatusBadRequest, "insufficient stock")
		default:
			s.logger.Error(c.Request.Context(), "create sale failed", "error", err)
			respondError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}
	c.JSON(http.StatusCreated, sale)
}
