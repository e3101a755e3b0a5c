package models

// CategoryOrderState is one row of the per-category order report.
type CategoryOrderState struct {
	Category      string  `bson:"category" json:"category"`
	NumberOfItems int32   `bson:"numberOfItems" json:"numberOfItems"`
	TotalPrice    float64 `bson:"totalPrice" json:"totalPrice"`
}

// AdminState is the storefront-wide summary shown on the dashboard.
type AdminState struct {
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}
