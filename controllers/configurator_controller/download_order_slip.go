package configurator_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/wizreet/cocobakes/models"
	"github.com/wizreet/cocobakes/services"
)

// DownloadOrderSlip godoc
// @Summary Download the order slip PDF
// @Description Generate and download a PDF of the configured order
// @Tags Configurator
// @Produce octet-stream
// @Param id path string true "Session ID"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Failure 409 {object} models.ApiResponse "No base selected"
// @Router /configurator/sessions/{id}/order-slip [get]
func DownloadOrderSlip(c *gin.Context) {
	id, sel, ok := loadSession(c)
	if !ok {
		return
	}

	message, breakdown := orderMessage(sel)
	if message == "" {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Select a base before downloading the order slip"))
		return
	}

	pdfBuffer := buildOrderSlipPDF(sel, breakdown)

	recordDispatch(c, id, sel, breakdown, "pdf")

	filename := fmt.Sprintf("order-slip-%s.pdf", id)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[configurator.order-slip] PDF downloaded for session %s", id)
}

// buildOrderSlipPDF renders the configured order as a one-page slip.
func buildOrderSlipPDF(sel *models.SelectionState, breakdown models.PriceBreakdown) *bytes.Buffer {
	base, toppings, extras := services.OrderLines(sel, catalog)

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkBrown := color.Color{Red: 61, Green: 43, Blue: 31}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("ORDER SLIP", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkBrown,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(msgOpts.BusinessName, props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkBrown,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Delivery to %s", msgOpts.DeliveryArea), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Date: %s", time.Now().Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Item lines
	m.Row(6, func() {
		m.Col(8, func() {
			m.Text("Item", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkBrown,
			})
		})
		m.Col(4, func() {
			m.Text("Details", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkBrown,
				Align: consts.Right,
			})
		})
	})

	slipRow := func(label, value string) {
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text(label, props.Text{
					Size:  9,
					Color: darkBrown,
				})
			})
			m.Col(4, func() {
				m.Text(value, props.Text{
					Size:  9,
					Color: darkBrown,
					Align: consts.Right,
				})
			})
		})
	}

	slipRow("Base", base)
	for _, t := range toppings {
		slipRow("Topping", t)
	}
	for _, e := range extras {
		slipRow("Add-on", e)
	}
	slipRow("Quantity", fmt.Sprintf("%d pieces", sel.Quantity))

	m.Row(8, func() {})

	// Totals
	totalRow := func(label, value string, bold bool) {
		style := consts.Normal
		size := 9.0
		labelColor := mediumGray
		if bold {
			style = consts.Bold
			size = 12.0
			labelColor = darkBrown
		}
		m.Row(6, func() {
			m.Col(8, func() {})
			m.Col(2, func() {
				m.Text(label, props.Text{
					Size:  size,
					Style: style,
					Color: labelColor,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(value, props.Text{
					Size:  size,
					Style: style,
					Color: darkBrown,
					Align: consts.Right,
				})
			})
		})
	}

	totalRow("Per piece", fmt.Sprintf("NPR %d", breakdown.UnitPrice), false)
	totalRow("Subtotal", fmt.Sprintf("NPR %d", breakdown.Subtotal), false)
	if breakdown.DiscountPercent > 0 {
		totalRow(fmt.Sprintf("Discount %d%%", breakdown.DiscountPercent),
			fmt.Sprintf("-NPR %d", breakdown.DiscountAmount), false)
	}
	totalRow("Total", fmt.Sprintf("NPR %d", breakdown.FinalPrice), true)

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for ordering!", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkBrown,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("© %d %s. Baked fresh every morning.", time.Now().Year(), msgOpts.BusinessName), props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[configurator.order-slip] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}

	return &buf
}
