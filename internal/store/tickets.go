package store

import (
	"context"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

func (s *Store) Tickets() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Ticket(nil), s.tickets...)
}

func (s *Store) TicketsForUser(userID string) []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Ticket
	for _, t := range s.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) TicketByID(id string) (domain.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Ticket{}, false
}

type TicketInput struct {
	ServiceID  string
	Subject    string
	Message    string
	Attachment *domain.ImageRef
}

// CreateTicket 新工单前插（倒序列表）；serviceName 只在创建时解析一次
func (s *Store) CreateTicket(ctx context.Context, in TicketInput) (domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.Ticket{}, ErrNotAuthenticated
	}

	serviceName := domain.ServiceNameOther
	if in.ServiceID != domain.ServiceIDOther {
		serviceName = domain.ServiceNameUnknown
		for _, svc := range s.services {
			if svc.ID == in.ServiceID {
				serviceName = svc.Title
				break
			}
		}
	}

	now := s.localStamp()
	t := domain.Ticket{
		ID:          s.newID(),
		UserID:      s.session.ID,
		UserName:    s.session.Name,
		ServiceID:   in.ServiceID,
		ServiceName: serviceName,
		Subject:     in.Subject,
		Status:      domain.TicketOpen,
		LastUpdated: now,
		Messages: []domain.TicketMessage{{
			ID:         s.newID(),
			SenderID:   s.session.ID,
			SenderName: s.session.Name,
			Message:    in.Message,
			Attachment: in.Attachment,
			Timestamp:  now,
		}},
	}
	s.tickets = append([]domain.Ticket{t}, s.tickets...)
	s.persist(ctx, KeyTickets, s.tickets)
	return t, nil
}

// ReplyToTicket 管理员回复置 Answered，客户回复置 Open；Closed 拒收。
// 工单不存在返回 (nil, nil)，与其它 update 族的静默无操作一致。
func (s *Store) ReplyToTicket(ctx context.Context, ticketID, message string, attachment *domain.ImageRef) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, ErrNotAuthenticated
	}
	for i := range s.tickets {
		if s.tickets[i].ID != ticketID {
			continue
		}
		t := &s.tickets[i]
		if t.Status == domain.TicketClosed {
			return nil, ErrTicketClosed
		}
		now := s.localStamp()
		t.Messages = append(t.Messages, domain.TicketMessage{
			ID:         s.newID(),
			SenderID:   s.session.ID,
			SenderName: s.session.Name,
			Message:    message,
			Attachment: attachment,
			Timestamp:  now,
		})
		if s.session.Role == domain.RoleAdmin {
			t.Status = domain.TicketAnswered
		} else {
			t.Status = domain.TicketOpen
		}
		t.LastUpdated = now
		s.persist(ctx, KeyTickets, s.tickets)
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

// CloseTicket 无条件置 Closed，幂等
func (s *Store) CloseTicket(ctx context.Context, ticketID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == ticketID {
			s.tickets[i].Status = domain.TicketClosed
			s.persist(ctx, KeyTickets, s.tickets)
			return
		}
	}
}
