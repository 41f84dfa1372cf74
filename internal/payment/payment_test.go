package payment

import (
	"errors"
	"testing"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		price string
		want  int
	}{
		{"200,000 TZS", 200000},
		{"300,000 TZS/mo", 300000},
		{"800,000 TZS", 800000},
		{"100000", 100000},
		{"Contact us", 0},
		{"", 0},
		{"TZS 1,5", 15},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.price); got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

func TestAmountUSD(t *testing.T) {
	tests := []struct {
		tzs  int
		want string
	}{
		{2600, "1.00"},
		{130000, "50.00"},
		{0, "0.00"},
		{650, "0.25"},
	}
	for _, tt := range tests {
		if got := AmountUSD(tt.tzs); got != tt.want {
			t.Errorf("AmountUSD(%d) = %q, want %q", tt.tzs, got, tt.want)
		}
	}
}

func TestBuildRequest(t *testing.T) {
	settings := domain.SystemSettings{
		FlutterwavePublicKey: "FLWPUBK-test",
		PaypalClientID:       "",
	}

	t.Run("flutterwave with key", func(t *testing.T) {
		req, err := BuildRequest(GatewayFlutterwave, 200000, "a@b.c", "Asha", "Logo Design", "Payment for Logo Design", settings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Gateway != GatewayFlutterwave || req.PublicKey != "FLWPUBK-test" {
			t.Errorf("gateway fields wrong: %+v", req)
		}
		if req.Amount != 200000 || req.Currency != "TZS" {
			t.Errorf("amount fields wrong: %+v", req)
		}
		if req.AmountUSD != "76.92" {
			t.Errorf("amountUsd = %q, want 76.92", req.AmountUSD)
		}
	})

	t.Run("missing credentials abort the attempt", func(t *testing.T) {
		_, err := BuildRequest(GatewayPaypal, 1000, "a@b.c", "Asha", "X", "", settings)
		if !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("err = %v, want ErrMissingCredentials", err)
		}
	})

	t.Run("unknown gateway", func(t *testing.T) {
		_, err := BuildRequest("m-pesa", 1000, "a@b.c", "Asha", "X", "", settings)
		if !errors.Is(err, ErrUnknownGateway) {
			t.Errorf("err = %v, want ErrUnknownGateway", err)
		}
	})
}
