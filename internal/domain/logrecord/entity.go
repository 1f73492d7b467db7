// internal/domain/logrecord/entity.go
package logrecord

import "time"

// Agent is the automation channel a log entry originated from. The agent
// enum differs from the platform enum: the automation process distinguishes
// owner and partner consoles of the same platform.
type Agent string

const (
	AgentYanolja      Agent = "YANOLJA"
	AgentYeogiBoss    Agent = "YEOGI_BOSS"
	AgentYeogiPartner Agent = "YEOGI_PARTNER"
	AgentNaver        Agent = "NAVER"
	AgentAirbnb       Agent = "AIRBNB"
	AgentAgoda        Agent = "AGODA"
	AgentBooking      Agent = "BOOKING"
	AgentExpedia      Agent = "EXPEDIA"
)

const (
	ResultSuccess = "success"
	ResultFail    = "fail"
)

// Failure classes reported by the automation process.
const (
	DescriptionLoginFail    = "LOGIN_FAIL"
	DescriptionParsingFail  = "PARSING_FAIL"
	DescriptionNetworkError = "NETWORK_ERROR"
	DescriptionEmpty        = "EMPTY"
)

var agentDisplayNames = map[Agent]string{
	AgentYanolja:      "야놀자",
	AgentYeogiBoss:    "여기어때 사장님",
	AgentYeogiPartner: "여기어때 파트너",
	AgentNaver:        "네이버",
	AgentAirbnb:       "에어비앤비",
	AgentAgoda:        "아고다",
	AgentBooking:      "부킹닷컴",
	AgentExpedia:      "익스피디아",
}

var descriptionDisplayNames = map[string]string{
	DescriptionLoginFail:    "로그인 실패",
	DescriptionParsingFail:  "파싱 실패",
	DescriptionNetworkError: "네트워크 오류",
	DescriptionEmpty:        "내역 없음",
}

// AgentDisplayName returns the dashboard name for an agent code.
func AgentDisplayName(a Agent) string {
	if name, ok := agentDisplayNames[a]; ok {
		return name
	}
	return string(a)
}

// DescriptionDisplayName returns the dashboard name for a failure class.
func DescriptionDisplayName(d string) string {
	if name, ok := descriptionDisplayNames[d]; ok {
		return name
	}
	return d
}

// Log is one append-only record of an automation attempt against a hotel
// platform. The dashboard is a pure viewer; nothing here is ever mutated
// locally.
type Log struct {
	ID             int64  `json:"id"`
	UserID         string `json:"user_id"`
	AccomID        string `json:"accom_id,omitempty"`
	RoomReserveID  string `json:"room_reserve_id,omitempty"`
	OTAPlaceName   string `json:"ota_place_name,omitempty"`
	Prepaid        int64  `json:"prepaid,omitempty"`
	Fee            int64  `json:"fee,omitempty"`
	CheckInSched   int64  `json:"check_in_sched,omitempty"`
	CheckOutSched  int64  `json:"check_out_sched,omitempty"`
	VisitType      string `json:"visit_type,omitempty"`
	StayType       string `json:"stay_type,omitempty"`
	ReserveNo      string `json:"reserve_no,omitempty"`
	Phone          string `json:"phone,omitempty"`
	GuestName      string `json:"guest_name,omitempty"`
	OTARoomName    string `json:"ota_room_name,omitempty"`
	Canceled       bool   `json:"canceled,omitempty"`
	Agent          Agent  `json:"agent,omitempty"`
	Result         string `json:"result,omitempty"`
	Description    string `json:"description,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`

	// Platform credential snapshot attached by the backend on detail views.
	Platform       string `json:"platform,omitempty"`
	LoginID        string `json:"login_id,omitempty"`
	HotelName      string `json:"hotel_name,omitempty"`
	MFAID          string `json:"mfa_id,omitempty"`
	MFAPlatform    string `json:"mfa_platform,omitempty"`
	PlatformStatus string `json:"platform_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
