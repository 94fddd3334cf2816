package handlers

import (
	"carrental/internal/adapters/http/middleware"
	"carrental/internal/core/services"
	"carrental/internal/pkg/pagination"
	"carrental/internal/pkg/response"
	"carrental/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles customer and employee account endpoints
type AccountHandler struct {
	customers services.Customers
	employees services.Employees
	auth      services.Authenticator
	validate  *validator.Validator
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(
	customers services.Customers,
	employees services.Employees,
	auth services.Authenticator,
	validate *validator.Validator,
) *AccountHandler {
	return &AccountHandler{
		customers: customers,
		employees: employees,
		auth:      auth,
		validate:  validate,
	}
}

// ============================================================
// Customers
// ============================================================

// RegisterCustomer handles customer self-registration
// @Summary Register customer
// @Description Create a customer account. The token is returned in the x-auth-token header.
// @Tags Customers
// @Accept json
// @Produce json
// @Param body body services.RegisterCustomerInput true "Customer data"
// @Success 200 {object} response.Response{data=models.CustomerResponse}
// @Header 200 {string} x-auth-token "Signed token"
// @Failure 400 {object} response.Response
// @Router /customers [post]
func (h *AccountHandler) RegisterCustomer(c *fiber.Ctx) error {
	var input services.RegisterCustomerInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	customer, err := h.customers.Register(c.UserContext(), &input)
	if err != nil {
		return fail(c, err)
	}

	token, err := h.auth.CustomerToken(customer)
	if err != nil {
		return err
	}

	return response.WithToken(c, token, "Customer registered successfully", customer.ToResponse())
}

// ListCustomers lists customers
// @Summary List customers
// @Description List customers sorted by name descending (employees only)
// @Tags Customers
// @Produce json
// @Security TokenAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /customers [get]
func (h *AccountHandler) ListCustomers(c *fiber.Ctx) error {
	page, err := h.customers.List(c.UserContext(), pagination.FromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Customers retrieved successfully", page)
}

// CurrentCustomer returns the calling customer
// @Summary Current customer
// @Tags Customers
// @Produce json
// @Security TokenAuth
// @Success 200 {object} response.Response{data=models.CustomerResponse}
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /customers/me [get]
func (h *AccountHandler) CurrentCustomer(c *fiber.Ctx) error {
	customer, err := h.customers.GetByID(c.UserContext(), middleware.Principal(c).ID)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Customer retrieved successfully", customer.ToResponse())
}

// ============================================================
// Employees
// ============================================================

// CreateEmployee creates a staff account
// @Summary Create employee
// @Description Create an employee account (managers only). The token is returned in the x-auth-token header.
// @Tags Employees
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.CreateEmployeeInput true "Employee data"
// @Success 200 {object} response.Response{data=models.EmployeeResponse}
// @Header 200 {string} x-auth-token "Signed token"
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /employees [post]
func (h *AccountHandler) CreateEmployee(c *fiber.Ctx) error {
	var input services.CreateEmployeeInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	employee, err := h.employees.Create(c.UserContext(), &input)
	if err != nil {
		return fail(c, err)
	}

	token, err := h.auth.EmployeeToken(employee)
	if err != nil {
		return err
	}

	return response.WithToken(c, token, "Employee created successfully", employee.ToResponse())
}

// ListEmployees lists employees
// @Summary List employees
// @Description List employees sorted by name (managers only)
// @Tags Employees
// @Produce json
// @Security TokenAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /employees [get]
func (h *AccountHandler) ListEmployees(c *fiber.Ctx) error {
	page, err := h.employees.List(c.UserContext(), pagination.FromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Employees retrieved successfully", page)
}

// CurrentEmployee returns the calling employee
// @Summary Current employee
// @Tags Employees
// @Produce json
// @Security TokenAuth
// @Success 200 {object} response.Response{data=models.EmployeeResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /employees/me [get]
func (h *AccountHandler) CurrentEmployee(c *fiber.Ctx) error {
	employee, err := h.employees.GetByID(c.UserContext(), middleware.Principal(c).ID)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Employee retrieved successfully", employee.ToResponse())
}
