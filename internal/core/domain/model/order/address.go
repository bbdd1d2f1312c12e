package order

import "strings"

// Address is a postal address as delivered by the backend. Any field may be
// empty.
type Address struct {
	FullAddress string
	City        string
	Province    string
	Zip         string
	Country     string
}

// IsEmpty reports whether no field carries text.
func (a Address) IsEmpty() bool {
	return strings.TrimSpace(a.FullAddress+a.City+a.Province+a.Zip+a.Country) == ""
}

// Locality joins city, province, zip and country, skipping blanks.
func (a Address) Locality() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.City, a.Province, a.Zip, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// LineItem is one product row of an order.
type LineItem struct {
	Title        string
	VariantTitle string
	Quantity     int
	Price        string
	Vendor       string
	ProductID    string
	VariantID    string
}
