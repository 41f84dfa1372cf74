package store

import (
	"context"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

func (s *Store) Invoices() []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Invoice(nil), s.invoices...)
}

func (s *Store) InvoicesForUser(userID string) []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Invoice
	for _, inv := range s.invoices {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out
}

func (s *Store) InvoiceByID(id string) (domain.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return domain.Invoice{}, false
}

type InvoiceInput struct {
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Amount  string `json:"amount"`
	Date    string `json:"date"`
	DueDate string `json:"dueDate"`
}

// CreateInvoice userName 在此刻解析并定格；找不到用户记 "Unknown"
func (s *Store) CreateInvoice(ctx context.Context, in InvoiceInput) domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	userName := "Unknown"
	for _, u := range s.users {
		if u.ID == in.UserID {
			userName = u.Name
			break
		}
	}
	inv := domain.Invoice{
		ID:       s.newID(),
		UserID:   in.UserID,
		UserName: userName,
		Title:    in.Title,
		Amount:   in.Amount,
		Date:     in.Date,
		DueDate:  in.DueDate,
		Status:   domain.InvoicePending,
	}
	s.invoices = append(s.invoices, inv)
	s.persist(ctx, KeyInvoices, s.invoices)
	return inv
}

// PayInvoice Pending→Paid 单向一次；已付或不存在为无操作
func (s *Store) PayInvoice(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			if s.invoices[i].Status == domain.InvoicePaid {
				return
			}
			s.invoices[i].Status = domain.InvoicePaid
			s.persist(ctx, KeyInvoices, s.invoices)
			return
		}
	}
}
