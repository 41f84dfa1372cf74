// Package payment 定义外部支付网关的协作契约：请求形状、金额提取与成功回调。
// 真正的结账 UI 由第三方托管，这里不发起网络调用。
package payment

import (
	"fmt"
	"strconv"
	"strings"
)

// ExchangeRateTZS 展示用固定汇率：1 USD = 2600 TZS
const ExchangeRateTZS = 2600

// ParseAmount 从自由文本价格（如 "200,000 TZS/mo"）剥掉所有非数字后取整；空结果为 0
func ParseAmount(price string) int {
	var b strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// AmountUSD 次级展示币种，两位小数字符串
func AmountUSD(amountTZS int) string {
	return fmt.Sprintf("%.2f", float64(amountTZS)/ExchangeRateTZS)
}
