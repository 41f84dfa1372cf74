package domain

import "strings"

type HomepageContent struct {
	HeroTitle     string `json:"heroTitle"`
	HeroSubtitle  string `json:"heroSubtitle"`
	ServicesTitle string `json:"servicesTitle"`
	CtaTitle      string `json:"ctaTitle"`
}

type ServicesContent struct {
	HeroTitle                  string `json:"heroTitle"`
	HeroDescription            string `json:"heroDescription"`
	CustomSolutionsTitle       string `json:"customSolutionsTitle"`
	CustomSolutionsDescription string `json:"customSolutionsDescription"`
}

// ClientsContent 中 HeroTags 为逗号分隔，Project2Bullets 为换行分隔；
// 分隔编码属于持久化契约，渲染端用 SplitTags/SplitLines 拆分
type ClientsContent struct {
	HeroTitle string `json:"heroTitle"`
	HeroImage string `json:"heroImage"`
	HeroTags  string `json:"heroTags"`

	Stat1Title    string `json:"stat1Title"`
	Stat1Subtitle string `json:"stat1Subtitle"`
	Stat2Title    string `json:"stat2Title"`
	Stat2Subtitle string `json:"stat2Subtitle"`
	Stat3Title    string `json:"stat3Title"`
	Stat3Subtitle string `json:"stat3Subtitle"`
	Stat4Title    string `json:"stat4Title"`
	Stat4Subtitle string `json:"stat4Subtitle"`

	Project1Title       string `json:"project1Title"`
	Project1Description string `json:"project1Description"`
	Project1Image       string `json:"project1Image"`
	Project1Link        string `json:"project1Link"`

	MidStat1Value string `json:"midStat1Value"`
	MidStat1Label string `json:"midStat1Label"`
	MidStat2Value string `json:"midStat2Value"`
	MidStat2Label string `json:"midStat2Label"`
	MidStat3Value string `json:"midStat3Value"`
	MidStat3Label string `json:"midStat3Label"`
	MidStat4Value string `json:"midStat4Value"`
	MidStat4Label string `json:"midStat4Label"`

	Project2Title       string `json:"project2Title"`
	Project2Description string `json:"project2Description"`
	Project2Bullets     string `json:"project2Bullets"`
	Project2Image       string `json:"project2Image"`
	Project2Link        string `json:"project2Link"`
}

type AboutContent struct {
	HeroTitleLine1    string `json:"heroTitleLine1"`
	HeroTitleLine2    string `json:"heroTitleLine2"`
	HeroTitleLine3    string `json:"heroTitleLine3"`
	HeroTitleLine4    string `json:"heroTitleLine4"`
	HeroTitleLine5    string `json:"heroTitleLine5"`
	HeroTitleLocation string `json:"heroTitleLocation"`
	HeroImage         string `json:"heroImage"`

	MarqueeTags string `json:"marqueeTags"`

	IntroLabel       string `json:"introLabel"`
	IntroTitle       string `json:"introTitle"`
	IntroDescription string `json:"introDescription"`

	IntroStat1Label string `json:"introStat1Label"`
	IntroStat1Value string `json:"introStat1Value"`
	IntroStat2Label string `json:"introStat2Label"`
	IntroStat2Value string `json:"introStat2Value"`
	IntroStat3Label string `json:"introStat3Label"`
	IntroStat3Value string `json:"introStat3Value"`

	BigStat1Value string `json:"bigStat1Value"`
	BigStat1Label string `json:"bigStat1Label"`
	BigStat2Value string `json:"bigStat2Value"`
	BigStat2Label string `json:"bigStat2Label"`
	BigStat3Value string `json:"bigStat3Value"`
	BigStat3Label string `json:"bigStat3Label"`

	ServicesTitle    string `json:"servicesTitle"`
	ServicesSubtitle string `json:"servicesSubtitle"`

	Service1Title string `json:"service1Title"`
	Service1Desc  string `json:"service1Desc"`
	Service2Title string `json:"service2Title"`
	Service2Desc  string `json:"service2Desc"`
	Service3Title string `json:"service3Title"`
	Service3Desc  string `json:"service3Desc"`
	Service4Title string `json:"service4Title"`
	Service4Desc  string `json:"service4Desc"`

	RecognitionTitle    string `json:"recognitionTitle"`
	RecognitionSubtitle string `json:"recognitionSubtitle"`

	Award1Title    string `json:"award1Title"`
	Award1Category string `json:"award1Category"`
	Award1Year     string `json:"award1Year"`
	Award2Title    string `json:"award2Title"`
	Award2Category string `json:"award2Category"`
	Award2Year     string `json:"award2Year"`
	Award3Title    string `json:"award3Title"`
	Award3Category string `json:"award3Category"`
	Award3Year     string `json:"award3Year"`
	Award4Title    string `json:"award4Title"`
	Award4Category string `json:"award4Category"`
	Award4Year     string `json:"award4Year"`

	CtaTitle string `json:"ctaTitle"`
}

// SplitTags 拆逗号分隔子列表，去空白、丢弃空项
func SplitTags(s string) []string { return splitTrim(s, ",") }

// SplitLines 拆换行分隔子列表（bullet points）
func SplitLines(s string) []string { return splitTrim(s, "\n") }

func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
