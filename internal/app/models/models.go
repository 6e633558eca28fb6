package models

// OnlineStatus is the availability state of an expert.
type OnlineStatus string

const (
	OnlineStatusOnline  OnlineStatus = "online"
	OnlineStatusOffline OnlineStatus = "offline"
)

// ValidOnlineStatus reports whether s is a known availability state.
func ValidOnlineStatus(s string) bool {
	switch OnlineStatus(s) {
	case OnlineStatusOnline, OnlineStatusOffline:
		return true
	}
	return false
}

// ExpertType distinguishes the kinds of bookable experts.
type ExpertType string

const (
	ExpertTypeReal ExpertType = "real"
	ExpertTypeBot  ExpertType = "bot"
	ExpertTypeAI   ExpertType = "AI"
)

// ValidExpertType reports whether s is a known expert type.
func ValidExpertType(s string) bool {
	switch ExpertType(s) {
	case ExpertTypeReal, ExpertTypeBot, ExpertTypeAI:
		return true
	}
	return false
}
