// internal/domain/platform/entity.go
package platform

import "time"

// Platform identifies the external travel platform a credential
// authenticates to. Immutable once a record is created.
type Platform string

const (
	Yanolja         Platform = "YANOLJA"
	GoodChoice      Platform = "GOOD_CHOICE"
	GoodChoiceHotel Platform = "GOOD_CHOICE_HOTEL"
	Naver           Platform = "NAVER"
	AirBnb          Platform = "AIR_BNB"
	Agoda           Platform = "AGODA"
	BookingHoldings Platform = "BOOKING_HOLDINGS"
	Expedia         Platform = "EXPEDIA"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// displayNames maps platform codes to the names shown in the dashboard.
// Data-only lookup table; unknown codes fall through to the raw value.
var displayNames = map[Platform]string{
	Yanolja:         "야놀자",
	GoodChoice:      "여기어때",
	GoodChoiceHotel: "여기어때 호텔",
	Naver:           "네이버",
	AirBnb:          "에어비앤비",
	Agoda:           "아고다",
	BookingHoldings: "부킹닷컴",
	Expedia:         "익스피디아",
}

// DisplayName returns the human-readable name for a platform code.
func DisplayName(p Platform) string {
	if name, ok := displayNames[p]; ok {
		return name
	}
	return string(p)
}

// HotelPlatform is one stored credential record for an external travel
// platform, owned by the authenticated operator. login_password is only
// present on detail fetches; list responses carry it masked or omitted by
// the backend.
type HotelPlatform struct {
	ID            int64    `json:"id"`
	UserID        int64    `json:"user_id"`
	Platform      Platform `json:"platform"`
	LoginID       string   `json:"login_id"`
	LoginPassword string   `json:"login_password,omitempty"`
	HotelName     string   `json:"hotel_name"`

	// Secondary MFA credential, optional.
	MFAID       string `json:"mfa_id,omitempty"`
	MFAPassword string `json:"mfa_password,omitempty"`
	MFAPlatform string `json:"mfa_platform,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
