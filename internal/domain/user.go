package domain

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// SeedAdminID 首次启动注入的管理员，受删除保护
const SeedAdminID = "admin"

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

// Session 去掉密码后的当前登录身份（持久化到 ric_user）
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Session() Session {
	return Session{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func (u User) IsAdmin() bool    { return u.Role == RoleAdmin }
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
