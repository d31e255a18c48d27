package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
)

// ReportHandler reportes de lucros, cierre de caja y reposición (protegido).
type ReportHandler struct {
	reports       *analytics.ReportUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *analytics.ReportUseCase, replenishment *inventory.ReplenishmentUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, replenishment: replenishment}
}

// parseInstant acepta RFC3339 o YYYY-MM-DD (medianoche UTC); dateOnly indica la segunda forma.
func parseInstant(raw string) (t *time.Time, dateOnly bool, err error) {
	if raw == "" {
		return nil, false, nil
	}
	if v, err := time.Parse(time.RFC3339, raw); err == nil {
		return &v, false, nil
	}
	v, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false, err
	}
	return &v, true, nil
}

// ProfitTotals godoc
// @Summary      Lucros sobre las salidas
// @Description  Cantidad de ventas, ingreso, costo y lucro. Todos los filtros son opcionales y se combinan.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        seller_id          query  string  false  "Vendedor"
// @Param        product_id         query  string  false  "Producto"
// @Param        customer_id        query  string  false  "Cliente"
// @Param        payment_method_id  query  string  false  "Forma de pago"
// @Param        date_min           query  string  false  "Desde (RFC3339 o YYYY-MM-DD, inclusive)"
// @Param        date_max           query  string  false  "Hasta (RFC3339 inclusive, o YYYY-MM-DD = día completo)"
// @Success      200  {object}  dto.ProfitTotalsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/lucros [get]
func (h *ReportHandler) ProfitTotals(c *fiber.Ctx) error {
	var req dto.ProfitTotalsRequest
	if ok, err := bindQuery(c, &req); !ok {
		return err
	}
	var err error
	if req.DateMin, _, err = parseInstant(c.Query("date_min")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "date_min inválida"})
	}
	if req.DateMax, req.DateMaxWholeDay, err = parseInstant(c.Query("date_max")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "date_max inválida"})
	}
	out, err := h.reports.ProfitTotals(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CashClosing godoc
// @Summary      Cierre de caja por forma de pago
// @Description  Totales y lucro agrupados por forma de pago en un día, mes o año. format=pdf devuelve el documento.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Produce      application/pdf
// @Param        period_type   query  string  true   "day | month | year"
// @Param        period_value  query  string  true   "2024-05-17 | 2024-05 | 2024"
// @Param        seller_id     query  string  false  "Vendedor (vacío = todos)"
// @Param        format        query  string  false  "json (default) | pdf"
// @Success      200  {object}  dto.CashClosingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/fechamento-caixa [get]
func (h *ReportHandler) CashClosing(c *fiber.Ctx) error {
	var req dto.CashClosingRequest
	if ok, err := bindQuery(c, &req); !ok {
		return err
	}
	if c.Query("format") == "pdf" {
		pdfBytes, err := h.reports.CashClosingPDF(c.UserContext(), req)
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `inline; filename="fechamento-`+req.PeriodValue+`.pdf"`)
		return c.Send(pdfBytes)
	}
	out, err := h.reports.CashClosing(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Description  Productos con cantidad por debajo del punto de reorden y la cantidad sugerida de compra.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        limite  query  int  false  "Punto de reorden (default 5)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/reposicao [get]
func (h *ReportHandler) Replenishment(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), int64(c.QueryInt("limite", 0)))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}
