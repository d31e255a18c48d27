package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
)

// CustomerHandler catálogos de clientes, vendedores y formas de pago (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Nombre del cliente"
// @Success      201   {object}  dto.LookupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateCustomer(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre"
// @Success      200     {array}  dto.LookupResponse
// @Router       /api/clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	return h.lookup(c, h.uc.ListCustomers)
}

// ListSellers godoc
// @Summary      Listar vendedores
// @Tags         vendedores
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre"
// @Success      200     {array}  dto.LookupResponse
// @Router       /api/vendedores [get]
func (h *CustomerHandler) ListSellers(c *fiber.Ctx) error {
	return h.lookup(c, h.uc.ListSellers)
}

// ListPaymentMethods godoc
// @Summary      Listar formas de pago
// @Tags         formas-pagamento
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre"
// @Success      200     {array}  dto.LookupResponse
// @Router       /api/formas-pagamento [get]
func (h *CustomerHandler) ListPaymentMethods(c *fiber.Ctx) error {
	return h.lookup(c, h.uc.ListPaymentMethods)
}

func (h *CustomerHandler) lookup(c *fiber.Ctx, list func(ctx context.Context, search string) ([]dto.LookupResponse, error)) error {
	var q dto.SearchRequest
	if ok, err := bindQuery(c, &q); !ok {
		return err
	}
	out, err := list(c.UserContext(), q.Search)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
