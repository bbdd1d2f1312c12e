// Package spreadsheet renders board views as XLSX workbooks.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	ordersSheet = "Orders"
	countsSheet = "Counts"
	timeLayout  = "2006-01-02 15:04:05"
)

var orderHeader = []any{
	"Order #", "Order ID", "Customer", "Phone", "Email", "Payment", "Payment Type",
	"Status", "Total", "Currency", "Items", "Address", "City", "Notes", "Created At",
}

// WriteBoard writes the orders of view to one sheet and the tab counts to a
// second one.
func WriteBoard(w io.Writer, view queries.GetBoardQueryResponse) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &orderHeader); err != nil {
		return err
	}
	for i, o := range view.Orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := orderRow(o)
		if err = f.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return fmt.Errorf("write order %s: %w", o.OrderID, err)
		}
	}
	if err := f.SetColWidth(ordersSheet, "A", "O", 18); err != nil {
		return err
	}

	if _, err := f.NewSheet(countsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(countsSheet, "A1", &[]any{"Tab", "Label", "Count", "Listed"}); err != nil {
		return err
	}
	for i, c := range view.Counts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(countsSheet, cell, &[]any{c.Tab, c.Label, c.Count, c.Listed}); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// FileName is the attachment name for an export of tab.
func FileName(tab string) string {
	return fmt.Sprintf("orders_%s.xlsx", tab)
}

func orderRow(o queries.OrderView) []any {
	items := make([]string, 0, len(o.Products))
	for _, p := range o.Products {
		title := p.Title
		if p.VariantTitle != "" {
			title += " (" + p.VariantTitle + ")"
		}
		items = append(items, fmt.Sprintf("%s x%d", title, p.Quantity))
	}

	var address, city string
	if o.ShippingAddress != nil {
		address = o.ShippingAddress.FullAddress
		city = o.ShippingAddress.City
	}

	created := ""
	if !o.CreatedAt.IsZero() {
		created = o.CreatedAt.Format(timeLayout)
	}

	return []any{
		o.OrderNumber,
		o.OrderID,
		o.CustomerName,
		o.Phone,
		o.Email,
		o.PaymentMethod,
		o.PaymentType,
		o.StatusLabel,
		o.TotalPrice,
		o.Currency,
		strings.Join(items, "; "),
		address,
		city,
		o.Notes,
		created,
	}
}
