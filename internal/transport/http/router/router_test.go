package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/auth"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/mirror"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/store"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/transport/http/router"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/ws"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newTestEngines(t *testing.T) (*gin.Engine, *gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.Options{Mirror: mirror.NewMemory()})
	if err := st.Init(context.Background()); err != nil {
		t.Fatalf("init store: %v", err)
	}
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
	hub := ws.NewHub(nil)
	go hub.Run()

	log := zap.NewNop()
	api := router.NewAPIEngine(log, st, jwter, nil, hub, time.Second)
	admin := router.NewAdminEngine(log, st, jwter, nil, hub)
	return api, admin, st
}

func do(t *testing.T, e *gin.Engine, method, path, token string, body any) envelope {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s: http status %d", method, path, w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: bad envelope: %v (%s)", method, path, err, w.Body.String())
	}
	return env
}

func login(t *testing.T, api *gin.Engine, email, password string) string {
	t.Helper()
	env := do(t, api, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": email, "password": password})
	if env.Code != 0 {
		t.Fatalf("login: code %d msg %q", env.Code, env.Msg)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil || out.Token == "" {
		t.Fatalf("login: no token in %s", env.Data)
	}
	return out.Token
}

func TestPublicEndpoints(t *testing.T) {
	api, _, _ := newTestEngines(t)

	for _, path := range []string{
		"/api/v1/settings",
		"/api/v1/content/homepage",
		"/api/v1/content/services",
		"/api/v1/content/clients",
		"/api/v1/content/about",
		"/api/v1/services",
		"/api/v1/testimonials",
		"/api/v1/portfolio",
	} {
		if env := do(t, api, http.MethodGet, path, "", nil); env.Code != 0 {
			t.Errorf("GET %s: code %d msg %q", path, env.Code, env.Msg)
		}
	}

	// 公共设置里不能带支付密钥
	env := do(t, api, http.MethodGet, "/api/v1/settings", "", nil)
	var m map[string]any
	if err := json.Unmarshal(env.Data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["flutterwavePublicKey"]; ok {
		t.Error("public settings leaked payment credentials")
	}
}

func TestPortalRequiresToken(t *testing.T) {
	api, _, _ := newTestEngines(t)
	env := do(t, api, http.MethodGet, "/api/v1/portal/orders", "", nil)
	if env.Code != 401 {
		t.Errorf("code = %d, want 401", env.Code)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	api, _, _ := newTestEngines(t)
	env := do(t, api, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "admin@rictanzania.co.tz", "password": "wrong"})
	if env.Code != 401 {
		t.Errorf("code = %d, want 401", env.Code)
	}
}

func TestOrderFlow(t *testing.T) {
	api, _, _ := newTestEngines(t)
	tok := login(t, api, "admin@rictanzania.co.tz", "admin123")

	env := do(t, api, http.MethodPost, "/api/v1/portal/orders", tok, gin.H{"serviceId": "1"})
	if env.Code != 0 {
		t.Fatalf("place order: code %d msg %q", env.Code, env.Msg)
	}
	var ord struct {
		ServiceTitle string `json:"serviceTitle"`
		Status       string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &ord); err != nil {
		t.Fatal(err)
	}
	if ord.ServiceTitle != "Logo Design" || ord.Status != "Pending" {
		t.Errorf("unexpected order %+v", ord)
	}

	env = do(t, api, http.MethodGet, "/api/v1/portal/orders", tok, nil)
	if env.Code != 0 {
		t.Fatalf("list orders: code %d", env.Code)
	}
	var orders []json.RawMessage
	if err := json.Unmarshal(env.Data, &orders); err != nil || len(orders) != 1 {
		t.Errorf("got %d orders, want 1", len(orders))
	}

	// 未知服务
	env = do(t, api, http.MethodPost, "/api/v1/portal/orders", tok, gin.H{"serviceId": "999"})
	if env.Code != 404 {
		t.Errorf("unknown service: code %d, want 404", env.Code)
	}
}

func TestCheckoutRequiresGatewayCredentials(t *testing.T) {
	api, _, st := newTestEngines(t)
	tok := login(t, api, "admin@rictanzania.co.tz", "admin123")

	// 清掉 paypal 凭据：支付尝试必须直接失败
	settings := st.Settings()
	settings.PaypalClientID = ""
	st.UpdateSettings(context.Background(), settings)

	env := do(t, api, http.MethodPost, "/api/v1/portal/checkout", tok, gin.H{"serviceId": "1", "gateway": "paypal"})
	if env.Code != 400 {
		t.Errorf("paypal without clientId: code %d, want 400", env.Code)
	}

	env = do(t, api, http.MethodPost, "/api/v1/portal/checkout", tok, gin.H{"serviceId": "1", "gateway": "m-pesa"})
	if env.Code != 400 {
		t.Errorf("unknown gateway: code %d, want 400", env.Code)
	}

	// flutterwave 有 key，应返回完整支付请求
	env = do(t, api, http.MethodPost, "/api/v1/portal/checkout", tok, gin.H{"serviceId": "1", "gateway": "flutterwave"})
	if env.Code != 0 {
		t.Fatalf("flutterwave checkout: code %d msg %q", env.Code, env.Msg)
	}
	var req struct {
		Amount    int    `json:"amount"`
		Currency  string `json:"currency"`
		AmountUSD string `json:"amountUsd"`
	}
	if err := json.Unmarshal(env.Data, &req); err != nil {
		t.Fatal(err)
	}
	if req.Amount != 200000 || req.Currency != "TZS" || req.AmountUSD != "76.92" {
		t.Errorf("unexpected payment request %+v", req)
	}
}

func TestAdminLoginRejectsClients(t *testing.T) {
	api, admin, _ := newTestEngines(t)

	// 先注册一个 client
	env := do(t, api, http.MethodPost, "/api/v1/auth/register", "",
		gin.H{"name": "Asha", "email": "asha@example.com", "password": "pw"})
	if env.Code != 0 {
		t.Fatalf("register: code %d msg %q", env.Code, env.Msg)
	}

	env = do(t, admin, http.MethodPost, "/admin/v1/auth/login", "",
		gin.H{"email": "asha@example.com", "password": "pw"})
	if env.Code != 403 {
		t.Errorf("client on admin login: code %d, want 403", env.Code)
	}
}

func TestAdminTicketReplyMarksAnswered(t *testing.T) {
	api, admin, st := newTestEngines(t)

	// 客户开工单（直接走 store，HTTP 层的 multipart 编码与本测试无关）
	if !st.Register(context.Background(), "Client", "c@example.com", "pw") {
		t.Fatal("register failed")
	}
	tk, err := st.CreateTicket(context.Background(), store.TicketInput{ServiceID: "others", Subject: "s", Message: "m"})
	if err != nil {
		t.Fatal(err)
	}

	tok := login(t, api, "admin@rictanzania.co.tz", "admin123")
	env := do(t, admin, http.MethodPost, "/admin/v1/tickets/"+tk.ID+"/reply", tok, gin.H{"message": "on it"})
	if env.Code != 0 {
		t.Fatalf("admin reply: code %d msg %q", env.Code, env.Msg)
	}
	var out struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Status != "Answered" {
		t.Errorf("status = %q, want Answered", out.Status)
	}

	// 关闭后拒收
	if env := do(t, admin, http.MethodPost, "/admin/v1/tickets/"+tk.ID+"/close", tok, nil); env.Code != 0 {
		t.Fatalf("close: code %d", env.Code)
	}
	if env := do(t, admin, http.MethodPost, "/admin/v1/tickets/"+tk.ID+"/reply", tok, gin.H{"message": "again"}); env.Code != 400 {
		t.Errorf("reply after close: code %d, want 400", env.Code)
	}
}

func TestAdminCannotDeleteSeedAdmin(t *testing.T) {
	api, admin, _ := newTestEngines(t)
	tok := login(t, api, "admin@rictanzania.co.tz", "admin123")

	env := do(t, admin, http.MethodDelete, "/admin/v1/users/admin", tok, nil)
	if env.Code != 403 {
		t.Errorf("code = %d, want 403", env.Code)
	}
}

func TestInvoiceCreateAndPay(t *testing.T) {
	api, admin, _ := newTestEngines(t)
	tok := login(t, api, "admin@rictanzania.co.tz", "admin123")

	env := do(t, admin, http.MethodPost, "/admin/v1/invoices", tok,
		gin.H{"userId": "admin", "title": "Website Creation", "amount": "800,000 TZS", "date": "1/15/2025", "dueDate": "2/15/2025"})
	if env.Code != 0 {
		t.Fatalf("create invoice: code %d msg %q", env.Code, env.Msg)
	}
	var inv struct {
		ID       string `json:"id"`
		UserName string `json:"userName"`
		Status   string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &inv); err != nil {
		t.Fatal(err)
	}
	if inv.UserName != "RIC Admin" || inv.Status != "Pending" {
		t.Errorf("unexpected invoice %+v", inv)
	}

	env = do(t, admin, http.MethodPost, "/admin/v1/invoices/"+inv.ID+"/pay", tok, nil)
	if env.Code != 0 {
		t.Fatalf("pay: code %d", env.Code)
	}
	if err := json.Unmarshal(env.Data, &inv); err != nil {
		t.Fatal(err)
	}
	if inv.Status != "Paid" {
		t.Errorf("status = %q, want Paid", inv.Status)
	}

	// PDF 下载走门户端
	req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/invoices/"+inv.ID+"/pdf", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	api.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf: http %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content-type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a pdf")
	}
}
