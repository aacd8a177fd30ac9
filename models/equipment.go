package models

// Equipment is a catalog entry owned by a service center. Read-only from
// this service's perspective.
type Equipment struct {
	ID          string `bson:"id" json:"id"`
	ChcID       string `bson:"chcId" json:"chcId"`
	Name        string `bson:"name" json:"name"`
	Rent        int64  `bson:"rent" json:"rent"` // hourly rate in whole rupees
	Available   bool   `bson:"available" json:"available"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
}

// EquipmentOption is the reduced catalog view handed to the assistant as
// grounding context.
type EquipmentOption struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Rent int64  `bson:"rent" json:"rent"`
}
