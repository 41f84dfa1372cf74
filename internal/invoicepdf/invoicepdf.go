// Package invoicepdf 把一张发票与当前系统设置渲染为单页固定版式 PDF。
// (invoice, settings) 的纯函数，不触碰 Store。
package invoicepdf

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

// 状态印章颜色：Paid 绿 / Pending 红
var (
	colorPaid    = [3]int{34, 197, 94}
	colorPending = [3]int{239, 68, 68}
)

func Render(inv domain.Invoice, settings domain.SystemSettings) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	// 顶部灰色色带
	pdf.SetFillColor(249, 250, 251)
	pdf.Rect(0, 0, pageWidth, 40, "F")

	// 公司名：首词加粗，其余常规
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(17, 24, 39)
	parts := strings.Fields(settings.CompanyName)
	first := settings.CompanyName
	rest := ""
	if len(parts) > 0 {
		first = parts[0]
		rest = strings.Join(parts[1:], " ")
	}
	pdf.Text(20, 25, first)
	if rest != "" {
		pdf.SetFont("Helvetica", "", 22)
		pdf.Text(20+pdf.GetStringWidth(first)+2, 25, rest)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.Text(20, 32, settings.CompanyEmail)
	pdf.Text(20, 36, settings.CompanyAddress)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(17, 24, 39)
	textRight(pdf, pageWidth-20, 25, "INVOICE")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	textRight(pdf, pageWidth-20, 32, "#"+shortID(inv.ID))

	y := 60.0

	pdf.SetTextColor(156, 163, 175)
	pdf.Text(20, y, "BILLED TO")
	pdf.SetFontSize(12)
	pdf.SetTextColor(17, 24, 39)
	pdf.Text(20, y+6, inv.UserName)
	pdf.SetFontSize(10)
	pdf.SetTextColor(107, 114, 128)
	pdf.Text(20, y+11, "Client Account")

	pdf.SetTextColor(156, 163, 175)
	pdf.Text(120, y, "DATE ISSUED")
	pdf.SetTextColor(17, 24, 39)
	pdf.Text(120, y+6, inv.Date)

	pdf.SetTextColor(156, 163, 175)
	pdf.Text(160, y, "DUE DATE")
	pdf.SetTextColor(17, 24, 39)
	pdf.Text(160, y+6, inv.DueDate)

	y += 30

	// 明细表头
	pdf.SetFillColor(243, 244, 246)
	pdf.Rect(20, y-5, pageWidth-40, 10, "F")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(55, 65, 81)
	pdf.Text(25, y+1, "ITEM DESCRIPTION")
	textRight(pdf, pageWidth-25, y+1, "AMOUNT")

	y += 15

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(17, 24, 39)
	pdf.Text(25, y, inv.Title)
	textRight(pdf, pageWidth-25, y, inv.Amount)

	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(20, y+5, pageWidth-20, y+5)

	y += 20

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.Text(140, y, "Subtotal")
	pdf.SetTextColor(17, 24, 39)
	textRight(pdf, pageWidth-25, y, inv.Amount)

	y += 8
	pdf.SetTextColor(107, 114, 128)
	pdf.Text(140, y, "Tax (0%)")
	pdf.SetTextColor(17, 24, 39)
	textRight(pdf, pageWidth-25, y, "0 TZS")

	y += 10
	pdf.Line(130, y-4, pageWidth-20, y-4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(140, y+2, "Total")
	textRight(pdf, pageWidth-25, y+2, inv.Amount)

	y += 30
	c := colorPending
	if inv.Status == domain.InvoicePaid {
		c = colorPaid
	}
	pdf.SetTextColor(c[0], c[1], c[2])
	pdf.SetFontSize(14)
	pdf.Text(20, y, strings.ToUpper(inv.Status))

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(156, 163, 175)
	pdf.Text(20, 280, "Thank you for your business.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename 下载名与原系统一致：invoice-<id>.pdf
func Filename(inv domain.Invoice) string { return "invoice-" + inv.ID + ".pdf" }

func shortID(id string) string {
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return strings.ToUpper(id)
}

func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}
