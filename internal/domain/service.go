package domain

// Service 价格为自由文本（如 "200,000 TZS"），金额由 payment.ParseAmount 提取
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Icon        string `json:"icon"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}
