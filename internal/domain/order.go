package domain

const (
	OrderPending   = "Pending"
	OrderActive    = "Active"
	OrderCompleted = "Completed"
)

// Order 的 serviceTitle/price 为下单时刻快照，后续改动服务目录不回填
type Order struct {
	ID           string `json:"id"`
	ServiceID    string `json:"serviceId"`
	ServiceTitle string `json:"serviceTitle"`
	Price        string `json:"price"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	UserID       string `json:"userId"`
}
