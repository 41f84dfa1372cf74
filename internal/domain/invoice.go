package domain

const (
	InvoicePending = "Pending"
	InvoicePaid    = "Paid"
)

// Invoice 的 userName 在创建时从用户表解析，之后不跟随改名
type Invoice struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	DueDate  string `json:"dueDate"`
	Status   string `json:"status"`
}
