package domain

var (
	MessageSuccessNotifyExpiring = "expiry notification processed"
	MessageFailedNotifyExpiring  = "failed to send expiry notification"
)

type NotifyExpiringResponse struct {
	Count int `json:"count"`
}
