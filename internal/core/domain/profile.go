package domain

import "github.com/shopspring/decimal"

// AppStyle selects the theme the child sees.
type AppStyle string

const (
	StyleBoys  AppStyle = "boys"
	StyleGirls AppStyle = "girls"
)

// Language is the preferred display language.
type Language string

const (
	LanguageEnglish            Language = "en"
	LanguageTraditionalChinese Language = "zh-Hant"
)

// TermInterestRates maps a canonical term key (see TermKey) to an annual
// percentage rate. The table may be partially populated; lookups fall back
// per-key rather than failing outright.
type TermInterestRates map[string]decimal.Decimal

// UserProfile holds the parent-configured settings. The parental password is a
// plain shared secret gating the admin surface inside the app; it is not a
// security credential.
type UserProfile struct {
	ParentName           string            `json:"parentName"`
	ChildName            string            `json:"childName"`
	ParentalPassword     string            `json:"parentalPassword"`
	NotificationsEnabled bool              `json:"notificationsEnabled"`
	AppStyle             AppStyle          `json:"appStyle"`
	InterestRate         decimal.Decimal   `json:"interestRate"` // Generic default annual rate
	TermInterestRates    TermInterestRates `json:"termInterestRates"`
	Language             Language          `json:"language"`
}

// DefaultUserProfile returns the profile a fresh install starts from. Loaded
// profiles are unmarshalled over a copy of this value so that fields added in
// later schema versions are backfilled instead of left zero.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		ParentalPassword:     "1234",
		NotificationsEnabled: true,
		AppStyle:             StyleGirls,
		InterestRate:         decimal.NewFromFloat(5.0),
		Language:             LanguageEnglish,
		TermInterestRates: TermInterestRates{
			"0.25": decimal.NewFromFloat(5.0),
			"0.5":  decimal.NewFromFloat(7.0),
			"1":    decimal.NewFromFloat(10.0),
			"3":    decimal.NewFromFloat(15.0),
		},
	}
}
