package invoicepdf

import (
	"bytes"
	"testing"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

func sampleInvoice(status string) domain.Invoice {
	return domain.Invoice{
		ID:       "8f2c1a9e-77aa-4d1c-b1de-9a0c33ab12cd",
		UserID:   "u1",
		UserName: "Asha Mwinyi",
		Title:    "Website Creation",
		Amount:   "800,000 TZS",
		Date:     "1/15/2025",
		DueDate:  "2/15/2025",
		Status:   status,
	}
}

func TestRender(t *testing.T) {
	settings := domain.SystemSettings{
		CompanyName:    "RIC Tanzania",
		CompanyEmail:   "info@rictanzania.co.tz",
		CompanyAddress: "Dar es Salaam, Tanzania",
	}
	for _, status := range []string{domain.InvoicePending, domain.InvoicePaid} {
		t.Run(status, func(t *testing.T) {
			b, err := Render(sampleInvoice(status), settings)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !bytes.HasPrefix(b, []byte("%PDF")) {
				t.Errorf("output does not start with %%PDF header")
			}
			if len(b) < 1000 {
				t.Errorf("suspiciously small pdf: %d bytes", len(b))
			}
		})
	}
}

func TestRenderSingleWordCompanyName(t *testing.T) {
	if _, err := Render(sampleInvoice(domain.InvoicePending), domain.SystemSettings{CompanyName: "Acme"}); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestFilename(t *testing.T) {
	inv := sampleInvoice(domain.InvoicePending)
	if got := Filename(inv); got != "invoice-"+inv.ID+".pdf" {
		t.Errorf("Filename = %q", got)
	}
}

func TestShortID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"8f2c1a9e-77aa-4d1c-b1de-9a0c33ab12cd", "AB12CD"},
		{"abc", "ABC"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shortID(tt.in); got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
