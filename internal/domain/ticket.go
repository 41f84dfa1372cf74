package domain

const (
	TicketOpen     = "Open"
	TicketAnswered = "Answered"
	TicketClosed   = "Closed"
)

// ServiceIDOther 工单不关联具体服务时的哨兵值
const ServiceIDOther = "others"

const (
	ServiceNameOther   = "General / Others"
	ServiceNameUnknown = "Unknown Service"
)

type TicketMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Message    string    `json:"message"`
	Attachment *ImageRef `json:"attachment,omitempty"`
	Timestamp  string    `json:"timestamp"`
}

// Ticket 集合按创建时间倒序（新工单前插）
type Ticket struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	UserName    string          `json:"userName"`
	ServiceID   string          `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Subject     string          `json:"subject"`
	Status      string          `json:"status"`
	LastUpdated string          `json:"lastUpdated"`
	Messages    []TicketMessage `json:"messages"`
}
