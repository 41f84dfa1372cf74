package payment

import (
	"errors"
	"strings"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

const (
	GatewayFlutterwave = "flutterwave"
	GatewayPaypal      = "paypal"
)

var (
	ErrUnknownGateway     = errors.New("payment: unknown gateway")
	ErrMissingCredentials = errors.New("payment: gateway credentials not configured")
)

// Request 发给托管结账 UI 的固定形状；一次支付尝试只挂载一个网关
type Request struct {
	Amount        int    `json:"amount"`
	Currency      string `json:"currency"`
	AmountUSD     string `json:"amountUsd"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	PublicKey     string `json:"publicKey"`
	Gateway       string `json:"gateway"`
}

// Result 网关成功回调携带的两元组
type Result struct {
	Gateway       string `json:"gateway"`
	TransactionID string `json:"transactionId"`
}

// BuildRequest 凭据缺失即失败：支付尝试放弃，不产生任何半成品状态
func BuildRequest(gateway string, amountTZS int, email, name, title, description string, settings domain.SystemSettings) (Request, error) {
	var key string
	switch strings.ToLower(gateway) {
	case GatewayFlutterwave:
		key = settings.FlutterwavePublicKey
	case GatewayPaypal:
		key = settings.PaypalClientID
	default:
		return Request{}, ErrUnknownGateway
	}
	if strings.TrimSpace(key) == "" {
		return Request{}, ErrMissingCredentials
	}
	return Request{
		Amount:        amountTZS,
		Currency:      "TZS",
		AmountUSD:     AmountUSD(amountTZS),
		CustomerEmail: email,
		CustomerName:  name,
		Title:         title,
		Description:   description,
		PublicKey:     key,
		Gateway:       strings.ToLower(gateway),
	}, nil
}
