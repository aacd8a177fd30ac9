package models

import "time"

// User represents a platform user. One session per user: the hash of the
// currently valid token is stored on the record and revoked at logout.
type User struct {
	ID          string    `bson:"id" json:"uid"`
	Name        string    `bson:"name" json:"name"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	CenterID    string    `bson:"centerId" json:"centerId"`
	CenterName  string    `bson:"centerName" json:"centerName"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	FCMToken    string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash   string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
