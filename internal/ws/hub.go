// Package ws 向已连接的门户客户端广播工单事件（创建/回复/关闭）。
package ws

import (
	"encoding/json"

	"go.uber.org/zap"
)

const (
	EventTicketCreated = "ticket.created"
	EventTicketReplied = "ticket.replied"
	EventTicketClosed  = "ticket.closed"
)

type TicketEvent struct {
	Type     string `json:"type"`
	TicketID string `json:"ticketId"`
	Status   string `json:"status"`
	Subject  string `json:"subject,omitempty"`
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run 独占事件循环，main 里 go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.log.Debug("ws: client connected", zap.Int("clients", len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.log.Debug("ws: client disconnected", zap.Int("clients", len(h.clients)))
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// 写不进去的慢客户端直接踢掉
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

func (h *Hub) Publish(ev TicketEvent) {
	b, err := json.Marshal(ev)
	if err != nil {
		h.log.Warn("ws: marshal event failed", zap.Error(err))
		return
	}
	h.broadcast <- b
}
