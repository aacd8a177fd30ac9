package models

// Center is a physical service location owning its own equipment inventory
// and order ledger.
type Center struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
}
