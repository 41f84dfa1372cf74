package store

import "errors"

var (
	// ErrNotAuthenticated 会话内才允许的操作在无会话时调用，属调用方契约错误
	ErrNotAuthenticated = errors.New("store: no authenticated session")
	// ErrTicketClosed 已关闭工单拒绝新回复
	ErrTicketClosed = errors.New("store: ticket is closed")
)
