package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
)

// MovementHandler entradas, salidas y líneas de venta. Todas las escrituras pasan por el motor de inventario.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// dayParam lee ?data=YYYY-MM-DD. nil si no viene.
func dayParam(c *fiber.Ctx) (*time.Time, bool, error) {
	raw := c.Query("data")
	if raw == "" {
		return nil, true, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "data debe tener formato YYYY-MM-DD"})
	}
	return &d, true, nil
}

// ── Entradas ──────────────────────────────────────────────────────────────────

// CreateEntry godoc
// @Summary      Registrar entrada de stock
// @Description  Suma la cantidad al producto y recalcula su valor unitario (promedio ponderado).
// @Tags         entradas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntryRequest  true  "product_id, quantity, unit_value"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entradas [post]
func (h *MovementHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.EntryRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.RecordEntry(c.UserContext(), GetEmployeeID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEntry godoc
// @Summary      Corregir entrada
// @Tags         entradas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrada"
// @Param        body  body  dto.EntryRequest  true  "Nuevos valores"
// @Success      200   {object}  dto.EntryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [put]
func (h *MovementHandler) UpdateEntry(c *fiber.Ctx) error {
	var in dto.EntryRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateEntry(c.UserContext(), c.Params("id"), GetEmployeeID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteEntry godoc
// @Summary      Eliminar entrada
// @Tags         entradas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [delete]
func (h *MovementHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.uc.DeleteEntry(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEntries godoc
// @Summary      Listar entradas
// @Tags         entradas
// @Security     Bearer
// @Produce      json
// @Param        data  query  string  false  "Día exacto (YYYY-MM-DD)"
// @Success      200   {array}  dto.EntryDetailResponse
// @Router       /api/entradas [get]
func (h *MovementHandler) ListEntries(c *fiber.Ctx) error {
	day, ok, err := dayParam(c)
	if !ok {
		return err
	}
	out, err := h.uc.ListEntries(c.UserContext(), day)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Saídas ────────────────────────────────────────────────────────────────────

// CreateExit godoc
// @Summary      Registrar salida (venta directa)
// @Tags         saidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExitRequest  true  "Datos de la salida"
// @Success      201   {object}  dto.ExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/saidas [post]
func (h *MovementHandler) CreateExit(c *fiber.Ctx) error {
	var in dto.ExitRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.RecordExit(c.UserContext(), GetEmployeeID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateExit godoc
// @Summary      Corregir salida
// @Tags         saidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la salida"
// @Param        body  body  dto.ExitRequest  true  "Nuevos valores"
// @Success      200   {object}  dto.ExitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/saidas/{id} [put]
func (h *MovementHandler) UpdateExit(c *fiber.Ctx) error {
	var in dto.ExitRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateExit(c.UserContext(), c.Params("id"), GetEmployeeID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteExit godoc
// @Summary      Eliminar salida (devuelve la cantidad al producto)
// @Tags         saidas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la salida"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/saidas/{id} [delete]
func (h *MovementHandler) DeleteExit(c *fiber.Ctx) error {
	if err := h.uc.DeleteExit(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListExits godoc
// @Summary      Listar salidas
// @Tags         saidas
// @Security     Bearer
// @Produce      json
// @Param        data  query  string  false  "Día exacto (YYYY-MM-DD)"
// @Success      200   {array}  dto.ExitDetailResponse
// @Router       /api/saidas [get]
func (h *MovementHandler) ListExits(c *fiber.Ctx) error {
	day, ok, err := dayParam(c)
	if !ok {
		return err
	}
	out, err := h.uc.ListExits(c.UserContext(), day)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Vendas ────────────────────────────────────────────────────────────────────

// CreateSale godoc
// @Summary      Agregar línea de venta a un pedido
// @Description  Descuenta la cantidad del ítem de estoque y recalcula el total del pedido.
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Línea de venta"
// @Success      201   {object}  dto.SaleLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *MovementHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.RecordSale(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateSale godoc
// @Summary      Corregir línea de venta
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.SaleRequest  true  "Nuevos valores"
// @Success      200   {object}  dto.SaleLineResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [put]
func (h *MovementHandler) UpdateSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateSale(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteSale godoc
// @Summary      Eliminar línea de venta
// @Tags         vendas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [delete]
func (h *MovementHandler) DeleteSale(c *fiber.Ctx) error {
	if err := h.uc.DeleteSale(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSales godoc
// @Summary      Listar líneas de venta
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleLineResponse
// @Router       /api/vendas [get]
func (h *MovementHandler) ListSales(c *fiber.Ctx) error {
	out, err := h.uc.ListSales(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
