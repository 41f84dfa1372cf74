package store_test

import (
	"context"
	"testing"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/mirror"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/store"
)

const (
	adminEmail    = "admin@rictanzania.co.tz"
	adminPassword = "admin123"
)

func newTestStore(t *testing.T, mir mirror.Mirror) *store.Store {
	t.Helper()
	if mir == nil {
		mir = mirror.NewMemory()
	}
	s := store.New(store.Options{Mirror: mir})
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("init store: %v", err)
	}
	return s
}

func mustLogin(t *testing.T, s *store.Store, email, password string) domain.Session {
	t.Helper()
	if !s.Login(context.Background(), email, password) {
		t.Fatalf("login %s failed", email)
	}
	sess, ok := s.Session()
	if !ok {
		t.Fatal("no session after login")
	}
	return sess
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"seed admin", adminEmail, adminPassword, true},
		{"wrong password", adminEmail, "nope", false},
		{"unknown email", "ghost@example.com", adminPassword, false},
		{"empty credentials", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, nil)
			got := s.Login(context.Background(), tt.email, tt.password)
			if got != tt.want {
				t.Errorf("Login(%q, %q) = %v, want %v", tt.email, tt.password, got, tt.want)
			}
			if _, ok := s.Session(); ok != tt.want {
				t.Errorf("session present = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestLoginScansAllMatchingEmails(t *testing.T) {
	// 注册不查重：同邮箱两个账号，任一密码都应能登录
	s := newTestStore(t, nil)
	ctx := context.Background()
	if !s.Register(ctx, "First", "dup@example.com", "pw-one") {
		t.Fatal("first register failed")
	}
	s.Logout(ctx)
	if !s.Register(ctx, "Second", "dup@example.com", "pw-two") {
		t.Fatal("second register failed")
	}
	s.Logout(ctx)

	if !s.Login(ctx, "dup@example.com", "pw-one") {
		t.Error("login with first password failed")
	}
	if !s.Login(ctx, "dup@example.com", "pw-two") {
		t.Error("login with second password failed")
	}
}

func TestRegisterCreatesClientAndLogsIn(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	before := len(s.Users())
	if !s.Register(ctx, "Asha", "asha@example.com", "secret") {
		t.Fatal("register failed")
	}
	users := s.Users()
	if len(users) != before+1 {
		t.Fatalf("got %d users, want %d", len(users), before+1)
	}

	sess, ok := s.Session()
	if !ok {
		t.Fatal("register should auto-login")
	}
	if sess.Role != domain.RoleClient {
		t.Errorf("role = %q, want %q", sess.Role, domain.RoleClient)
	}
	if sess.Name != "Asha" || sess.Email != "asha@example.com" {
		t.Errorf("unexpected session %+v", sess)
	}
}

func TestLogoutClearsSessionKey(t *testing.T) {
	mir := mirror.NewMemory()
	s := newTestStore(t, mir)
	ctx := context.Background()

	mustLogin(t, s, adminEmail, adminPassword)
	if _, ok, _ := mir.Load(ctx, store.KeySession); !ok {
		t.Fatal("session not persisted after login")
	}

	s.Logout(ctx)
	if _, ok := s.Session(); ok {
		t.Error("session still present after logout")
	}
	if _, ok, _ := mir.Load(ctx, store.KeySession); ok {
		t.Error("persisted session not cleared after logout")
	}
}

func TestPlaceOrderSnapshotsService(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()
	mustLogin(t, s, adminEmail, adminPassword)

	svc, ok := s.ServiceByID("1")
	if !ok {
		t.Fatal("seed service missing")
	}
	ord, err := s.PlaceOrder(ctx, svc, "")
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if ord.Status != domain.OrderPending {
		t.Errorf("default status = %q, want %q", ord.Status, domain.OrderPending)
	}
	if ord.ServiceTitle != svc.Title || ord.Price != svc.Price {
		t.Errorf("order did not snapshot service fields: %+v", ord)
	}

	// 改目录、删目录，都不回填已有订单
	newTitle := "Renamed"
	s.UpdateService(ctx, svc.ID, store.ServicePatch{Title: &newTitle})
	s.DeleteService(ctx, svc.ID)

	after := s.Orders()
	if len(after) != 1 {
		t.Fatalf("got %d orders, want 1", len(after))
	}
	if after[0].ServiceTitle != svc.Title || after[0].Price != svc.Price {
		t.Errorf("order snapshot mutated: %+v", after[0])
	}
}

func TestPlaceOrderRequiresSession(t *testing.T) {
	s := newTestStore(t, nil)
	_, err := s.PlaceOrder(context.Background(), domain.Service{ID: "1", Title: "X"}, domain.OrderActive)
	if err != store.ErrNotAuthenticated {
		t.Errorf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestCreateInvoiceFreezesUserName(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	inv := s.CreateInvoice(ctx, store.InvoiceInput{
		UserID: domain.SeedAdminID, Title: "Website Creation", Amount: "800,000 TZS",
		Date: "1/15/2025", DueDate: "2/15/2025",
	})
	if inv.UserName != "RIC Admin" {
		t.Errorf("userName = %q, want %q", inv.UserName, "RIC Admin")
	}
	if inv.Status != domain.InvoicePending {
		t.Errorf("status = %q, want %q", inv.Status, domain.InvoicePending)
	}

	// 用户改名不回填账单
	renamed := "New Name"
	s.UpdateUser(ctx, domain.SeedAdminID, store.UserPatch{Name: &renamed})
	got, _ := s.InvoiceByID(inv.ID)
	if got.UserName != "RIC Admin" {
		t.Errorf("userName after rename = %q, want frozen %q", got.UserName, "RIC Admin")
	}

	// 不存在的用户记 Unknown
	ghost := s.CreateInvoice(ctx, store.InvoiceInput{UserID: "nope", Title: "X"})
	if ghost.UserName != "Unknown" {
		t.Errorf("userName = %q, want Unknown", ghost.UserName)
	}
}

func TestPayInvoiceIdempotent(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	inv := s.CreateInvoice(ctx, store.InvoiceInput{UserID: domain.SeedAdminID, Title: "X", Amount: "100,000 TZS"})
	s.PayInvoice(ctx, inv.ID)
	s.PayInvoice(ctx, inv.ID)

	got, ok := s.InvoiceByID(inv.ID)
	if !ok {
		t.Fatal("invoice gone")
	}
	if got.Status != domain.InvoicePaid {
		t.Errorf("status = %q, want %q", got.Status, domain.InvoicePaid)
	}

	// 不存在的 id 无操作
	s.PayInvoice(ctx, "missing")
}

func TestCreateTicketResolvesServiceName(t *testing.T) {
	tests := []struct {
		name      string
		serviceID string
		want      string
	}{
		{"general bucket", domain.ServiceIDOther, domain.ServiceNameOther},
		{"known service", "3", "Website Creation"},
		{"unknown service", "999", domain.ServiceNameUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, nil)
			mustLogin(t, s, adminEmail, adminPassword)
			tk, err := s.CreateTicket(context.Background(), store.TicketInput{
				ServiceID: tt.serviceID, Subject: "Help", Message: "Hello",
			})
			if err != nil {
				t.Fatalf("create ticket: %v", err)
			}
			if tk.ServiceName != tt.want {
				t.Errorf("serviceName = %q, want %q", tk.ServiceName, tt.want)
			}
			if tk.Status != domain.TicketOpen {
				t.Errorf("status = %q, want %q", tk.Status, domain.TicketOpen)
			}
			if len(tk.Messages) != 1 || tk.Messages[0].Message != "Hello" {
				t.Errorf("unexpected messages %+v", tk.Messages)
			}
		})
	}
}

func TestTicketsNewestFirst(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()
	mustLogin(t, s, adminEmail, adminPassword)

	first, _ := s.CreateTicket(ctx, store.TicketInput{ServiceID: domain.ServiceIDOther, Subject: "first", Message: "m"})
	second, _ := s.CreateTicket(ctx, store.TicketInput{ServiceID: domain.ServiceIDOther, Subject: "second", Message: "m"})

	all := s.Tickets()
	if len(all) != 2 {
		t.Fatalf("got %d tickets, want 2", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("tickets not newest-first: %q then %q", all[0].Subject, all[1].Subject)
	}
}

func TestReplyToTicketStatusRules(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	// 客户开工单
	if !s.Register(ctx, "Client", "client@example.com", "pw") {
		t.Fatal("register failed")
	}
	tk, err := s.CreateTicket(ctx, store.TicketInput{ServiceID: domain.ServiceIDOther, Subject: "s", Message: "m"})
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}

	// 管理员回复 → Answered
	mustLogin(t, s, adminEmail, adminPassword)
	got, err := s.ReplyToTicket(ctx, tk.ID, "we are on it", nil)
	if err != nil {
		t.Fatalf("admin reply: %v", err)
	}
	if got.Status != domain.TicketAnswered {
		t.Errorf("after admin reply status = %q, want %q", got.Status, domain.TicketAnswered)
	}

	// 客户再回复 → Open
	mustLogin(t, s, "client@example.com", "pw")
	got, err = s.ReplyToTicket(ctx, tk.ID, "thanks, one more thing", nil)
	if err != nil {
		t.Fatalf("client reply: %v", err)
	}
	if got.Status != domain.TicketOpen {
		t.Errorf("after client reply status = %q, want %q", got.Status, domain.TicketOpen)
	}
	if len(got.Messages) != 3 {
		t.Errorf("got %d messages, want 3", len(got.Messages))
	}
}

func TestClosedTicketRejectsReplies(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()
	mustLogin(t, s, adminEmail, adminPassword)

	tk, _ := s.CreateTicket(ctx, store.TicketInput{ServiceID: domain.ServiceIDOther, Subject: "s", Message: "m"})
	s.CloseTicket(ctx, tk.ID)
	s.CloseTicket(ctx, tk.ID) // 幂等

	if _, err := s.ReplyToTicket(ctx, tk.ID, "anyone there?", nil); err != store.ErrTicketClosed {
		t.Errorf("reply to closed err = %v, want ErrTicketClosed", err)
	}
	got, _ := s.TicketByID(tk.ID)
	if got.Status != domain.TicketClosed {
		t.Errorf("status = %q, want %q", got.Status, domain.TicketClosed)
	}
	if len(got.Messages) != 1 {
		t.Errorf("closed ticket grew messages: %d", len(got.Messages))
	}
}

func TestReplyToMissingTicket(t *testing.T) {
	s := newTestStore(t, nil)
	mustLogin(t, s, adminEmail, adminPassword)
	got, err := s.ReplyToTicket(context.Background(), "missing", "hello", nil)
	if got != nil || err != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", got, err)
	}
}

func TestSeedAdminCannotBeDeleted(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	s.DeleteUser(ctx, domain.SeedAdminID)
	if _, ok := s.UserByID(domain.SeedAdminID); !ok {
		t.Fatal("seed admin was deleted")
	}

	u := s.AddUser(ctx, domain.User{Name: "Temp", Email: "t@example.com", Role: domain.RoleClient, Password: "x"})
	s.DeleteUser(ctx, u.ID)
	if _, ok := s.UserByID(u.ID); ok {
		t.Error("regular user not deleted")
	}
}

func TestRehydrationRoundTrip(t *testing.T) {
	mir := mirror.NewMemory()
	ctx := context.Background()

	s1 := newTestStore(t, mir)
	if !s1.Register(ctx, "Asha", "asha@example.com", "pw") {
		t.Fatal("register failed")
	}
	svc, _ := s1.ServiceByID("2")
	ord, err := s1.PlaceOrder(ctx, svc, domain.OrderActive)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	tk, _ := s1.CreateTicket(ctx, store.TicketInput{ServiceID: "2", Subject: "s", Message: "m"})
	inv := s1.CreateInvoice(ctx, store.InvoiceInput{UserID: ord.UserID, Title: "T", Amount: "1,000 TZS"})
	settings := s1.Settings()
	settings.CompanyName = "Renamed Co"
	s1.UpdateSettings(ctx, settings)

	// 同一镜像重建：内存状态应完全复原
	s2 := newTestStore(t, mir)

	if got := len(s2.Users()); got != len(s1.Users()) {
		t.Errorf("users = %d, want %d", got, len(s1.Users()))
	}
	if sess, ok := s2.Session(); !ok || sess.Email != "asha@example.com" {
		t.Errorf("session not rehydrated: %+v ok=%v", sess, ok)
	}
	orders := s2.Orders()
	if len(orders) != 1 || orders[0] != ord {
		t.Errorf("orders not rehydrated: %+v", orders)
	}
	gotInv, ok := s2.InvoiceByID(inv.ID)
	if !ok || gotInv != inv {
		t.Errorf("invoice not rehydrated: %+v", gotInv)
	}
	gotTk, ok := s2.TicketByID(tk.ID)
	if !ok || gotTk.Subject != "s" || gotTk.ServiceName != tk.ServiceName {
		t.Errorf("ticket not rehydrated: %+v", gotTk)
	}
	if s2.Settings().CompanyName != "Renamed Co" {
		t.Errorf("settings not rehydrated: %q", s2.Settings().CompanyName)
	}
}

func TestCorruptPersistedValueKeepsDefaults(t *testing.T) {
	mir := mirror.NewMemory()
	ctx := context.Background()
	if err := mir.Save(ctx, store.KeyServices, []byte("{definitely not json")); err != nil {
		t.Fatal(err)
	}

	s := newTestStore(t, mir)
	if got := len(s.Services()); got != 5 {
		t.Errorf("services = %d, want 5 defaults", got)
	}
}

func TestServicePatchShallowMerge(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	price := "999,000 TZS"
	s.UpdateService(ctx, "1", store.ServicePatch{Price: &price})

	got, _ := s.ServiceByID("1")
	if got.Price != price {
		t.Errorf("price = %q, want %q", got.Price, price)
	}
	if got.Title != "Logo Design" {
		t.Errorf("nil patch field mutated title: %q", got.Title)
	}
}
