package domain

const (
	ThemeDefault    = "default"
	ThemeModernDark = "modern-dark"
)

type SystemSettings struct {
	CompanyName    string `json:"companyName"`
	CompanyEmail   string `json:"companyEmail"`
	CompanyPhone   string `json:"companyPhone"`
	CompanyAddress string `json:"companyAddress"`
	CompanyLogoURL string `json:"companyLogoUrl"`

	FlutterwavePublicKey string `json:"flutterwavePublicKey"`
	PaypalClientID       string `json:"paypalClientId"`

	Theme    string `json:"theme"`
	DarkMode bool   `json:"darkMode"`

	CompanyFacebook  string `json:"companyFacebook"`
	CompanyInstagram string `json:"companyInstagram"`
	CompanyLinkedin  string `json:"companyLinkedin"`
}

// EffectiveDarkMode 深色主题生效规则：显式开关或 modern-dark 主题
func (s SystemSettings) EffectiveDarkMode() bool {
	return s.DarkMode || s.Theme == ThemeModernDark
}
