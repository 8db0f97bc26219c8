package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/apiweb/internal/adapters/http/handlers"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/rafaelleal24/apiweb/internal/core/dto"
	"github.com/rafaelleal24/apiweb/internal/core/service"
	"github.com/rafaelleal24/apiweb/internal/core/serviceerrors"
)

type CustomerResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	}
}

type CustomerController struct {
	customerService *service.CustomerService
}

func NewCustomerController(customerService *service.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

func (cc *CustomerController) GetAll(c *gin.Context) {
	customers, err := cc.customerService.GetAll(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	if len(customers) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		response[i] = NewCustomerResponse(customer)
	}

	c.JSON(http.StatusOK, response)
}

func (cc *CustomerController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewNotFoundError("Customer not found"))
		return
	}

	customer, err := cc.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	if customer == nil {
		handlers.HandleError(c, serviceerrors.NewNotFoundError("Customer not found"))
		return
	}

	c.JSON(http.StatusOK, NewCustomerResponse(customer))
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var request dto.CreateCustomerRequest
	if err := handlers.BindJSONBody(c, &request); err != nil {
		if errors.Is(err, handlers.ErrEmptyBody) {
			handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Customer is required"))
			return
		}
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	customer := domain.NewCustomer(request.ID, request.Name, request.Email)
	if err := cc.customerService.Add(c.Request.Context(), customer); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.Header("Location", "/api/customer?id="+strconv.Itoa(customer.ID))
	c.JSON(http.StatusCreated, NewCustomerResponse(customer))
}
