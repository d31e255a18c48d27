// Package analytics contiene los casos de uso de reportes de negocio: lucros sobre las
// salidas y cierre de caja por forma de pago.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/report"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// CashClosingPDFGenerator puerto de salida para renderizar el cierre de caja.
type CashClosingPDFGenerator interface {
	GenerateCashClosingPDF(ctx context.Context, closing *dto.CashClosingResponse) ([]byte, error)
}

// ReportUseCase reportes read-only sobre saidas.
//
// Fuente de datos: AnalyticsRepository (agregaciones en la BD); los vendedores sólo se consultan
// para rotular el PDF.
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	sellers       repository.SellerRepository
	pdf           CashClosingPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exponen reportes en PDF.
func NewReportUseCase(analyticsRepo repository.AnalyticsRepository, sellers repository.SellerRepository, pdf CashClosingPDFGenerator) *ReportUseCase {
	return &ReportUseCase{analyticsRepo: analyticsRepo, sellers: sellers, pdf: pdf}
}

// ProfitTotals cantidad de ventas, ingreso, costo y lucro de las salidas que cumplen todos los filtros presentes.
func (uc *ReportUseCase) ProfitTotals(ctx context.Context, in dto.ProfitTotalsRequest) (*dto.ProfitTotalsResponse, error) {
	if in.DateMin != nil && in.DateMax != nil && in.DateMin.After(*in.DateMax) {
		return nil, fmt.Errorf("%w: date_min posterior a date_max", domain.ErrInvalidInput)
	}
	filter := entity.ProfitFilter{
		SellerID:        in.SellerID,
		ProductID:       in.ProductID,
		CustomerID:      in.CustomerID,
		PaymentMethodID: in.PaymentMethodID,
		DateMin:         in.DateMin,
		DateMax:         in.DateMax,
	}
	if in.DateMax != nil && in.DateMaxWholeDay {
		next := in.DateMax.AddDate(0, 0, 1)
		filter.DateMax, filter.DateBefore = nil, &next
	}
	agg, err := uc.analyticsRepo.ProfitTotals(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ProfitTotalsResponse{
		SalesCount: agg.SalesCount,
		Revenue:    agg.Revenue,
		Cost:       agg.Cost,
		Profit:     agg.Revenue.Sub(agg.Cost),
	}, nil
}

// CashClosing agrupa por forma de pago las salidas del período (día, mes o año).
// sellerID vacío incluye a todos los vendedores.
func (uc *ReportUseCase) CashClosing(ctx context.Context, in dto.CashClosingRequest) (*dto.CashClosingResponse, error) {
	period, err := report.ParsePeriod(in.PeriodType, in.PeriodValue)
	if err != nil {
		return nil, err
	}
	rows, err := uc.analyticsRepo.CashClosing(ctx, period, in.SellerID)
	if err != nil {
		return nil, err
	}
	out := &dto.CashClosingResponse{
		PeriodType:      string(period.Type),
		PeriodValue:     period.Value,
		SellerID:        in.SellerID,
		ByPaymentMethod: make(map[string]dto.PaymentMethodTotalsDTO, len(rows)),
		GrandTotal:      decimal.Zero,
		GrandProfit:     decimal.Zero,
	}
	for _, r := range rows {
		profit := r.Total.Sub(r.Cost)
		out.ByPaymentMethod[r.PaymentMethod] = dto.PaymentMethodTotalsDTO{Total: r.Total, Profit: profit}
		out.GrandTotal = out.GrandTotal.Add(r.Total)
		out.GrandProfit = out.GrandProfit.Add(profit)
	}
	return out, nil
}

// CashClosingPDF genera el cierre de caja en PDF. El reporte y el nombre del vendedor se
// consultan en paralelo.
func (uc *ReportUseCase) CashClosingPDF(ctx context.Context, in dto.CashClosingRequest) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("generador PDF no configurado")
	}
	var (
		closing *dto.CashClosingResponse
		seller  *entity.Seller
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		closing, err = uc.CashClosing(gctx, in)
		return err
	})
	if in.SellerID != "" {
		g.Go(func() error {
			var err error
			seller, err = uc.sellers.GetByID(gctx, in.SellerID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if seller != nil {
		closing.SellerName = seller.Name
	}
	return uc.pdf.GenerateCashClosingPDF(ctx, closing)
}
