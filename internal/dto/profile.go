package dto

import (
	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserProfileRequest carries the parent-configured settings, used both at
// onboarding and for later updates.
type UserProfileRequest struct {
	ParentName           string                     `json:"parentName" binding:"required"`
	ChildName            string                     `json:"childName" binding:"required"`
	ParentalPassword     string                     `json:"parentalPassword" binding:"required"`
	NotificationsEnabled *bool                      `json:"notificationsEnabled,omitempty"`
	AppStyle             string                     `json:"appStyle,omitempty" binding:"omitempty,oneof=boys girls"`
	InterestRate         *decimal.Decimal           `json:"interestRate,omitempty"`
	TermInterestRates    map[string]decimal.Decimal `json:"termInterestRates,omitempty"`
	Language             string                     `json:"language,omitempty" binding:"omitempty,oneof=en zh-Hant"`
}

// ToDomain merges the request over the default profile, so omitted optional
// fields keep their defaults.
func (r UserProfileRequest) ToDomain() domain.UserProfile {
	profile := domain.DefaultUserProfile()
	profile.ParentName = r.ParentName
	profile.ChildName = r.ChildName
	profile.ParentalPassword = r.ParentalPassword

	if r.NotificationsEnabled != nil {
		profile.NotificationsEnabled = *r.NotificationsEnabled
	}
	if r.AppStyle != "" {
		profile.AppStyle = domain.AppStyle(r.AppStyle)
	}
	if r.InterestRate != nil {
		profile.InterestRate = *r.InterestRate
	}
	if r.Language != "" {
		profile.Language = domain.Language(r.Language)
	}
	for term, rate := range r.TermInterestRates {
		profile.TermInterestRates[term] = rate
	}
	return profile
}

// UserProfileResponse mirrors the profile without the parental password.
type UserProfileResponse struct {
	ParentName           string                     `json:"parentName"`
	ChildName            string                     `json:"childName"`
	NotificationsEnabled bool                       `json:"notificationsEnabled"`
	AppStyle             string                     `json:"appStyle"`
	InterestRate         decimal.Decimal            `json:"interestRate"`
	TermInterestRates    map[string]decimal.Decimal `json:"termInterestRates"`
	Language             string                     `json:"language"`
}

// ToUserProfileResponse maps a domain profile to its response shape.
func ToUserProfileResponse(profile domain.UserProfile) UserProfileResponse {
	return UserProfileResponse{
		ParentName:           profile.ParentName,
		ChildName:            profile.ChildName,
		NotificationsEnabled: profile.NotificationsEnabled,
		AppStyle:             string(profile.AppStyle),
		InterestRate:         profile.InterestRate,
		TermInterestRates:    profile.TermInterestRates,
		Language:             string(profile.Language),
	}
}

// UpdateTermRatesRequest replaces the per-term interest-rate table.
type UpdateTermRatesRequest struct {
	TermInterestRates map[string]decimal.Decimal `json:"termInterestRates" binding:"required"`
}

// UpdateRateRequest replaces the generic default annual rate.
type UpdateRateRequest struct {
	InterestRate decimal.Decimal `json:"interestRate" binding:"required"`
}
