package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rafaelleal24/apiweb/internal/adapters/http/handlers"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/rafaelleal24/apiweb/internal/core/dto"
	"github.com/rafaelleal24/apiweb/internal/core/service"
	"github.com/rafaelleal24/apiweb/internal/core/serviceerrors"
)

type ProductController struct {
	productService *service.ProductService
}

type ProductResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:    product.ID().String(),
		Name:  product.Name(),
		Price: json.Number(product.Price().String()),
	}
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func (pc *ProductController) GetAll(c *gin.Context) {
	products, err := pc.productService.GetAll(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	if len(products) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, response)
}

func (pc *ProductController) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewNotFoundError("Product not found"))
		return
	}

	product, err := pc.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	if product == nil {
		handlers.HandleError(c, serviceerrors.NewNotFoundError("Product not found"))
		return
	}

	c.JSON(http.StatusOK, NewProductResponse(product))
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := handlers.BindJSONBody(c, &request); err != nil {
		if errors.Is(err, handlers.ErrEmptyBody) {
			handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Product is required"))
			return
		}
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	product, err := domain.NewProduct(request.ID, request.Name, request.Price)
	if err != nil {
		handlers.HandleError(c, serviceerrors.FromDomain(err))
		return
	}

	if err := pc.productService.Add(c.Request.Context(), product); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.Header("Location", "/api/product?id="+product.ID().String())
	c.JSON(http.StatusCreated, NewProductResponse(product))
}
