package entity

import "time"

const (
	NotificationAccepted = "accepted"
	NotificationRejected = "rejected"
)

// NotificationRecord is a received datafeed together with the verification outcome.
type NotificationRecord struct {
	RequestId    string       `json:"request_id" bson:"request_id"`
	Notification Notification `json:"notification" bson:"notification"`
	Status       string       `json:"status" bson:"status"`
	Reason       string       `json:"reason,omitempty" bson:"reason"`
	Time         time.Time    `json:"time" bson:"time"`
}

func (r *NotificationRecord) DataType() string {
	return "notification"
}
