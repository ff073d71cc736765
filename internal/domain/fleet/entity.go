package fleet

// Vehicle represents one fleet asset, keyed by its fixed vehicle code.
// The catalog import upserts by VehicleID; the latest import wins.
type Vehicle struct {
	VehicleID   string `json:"vehicle_id" db:"vehicle_id"`
	Designation string `json:"designation" db:"designation"`
	Year        int    `json:"year" db:"year"`
	OilQuantity int    `json:"oil_quantity" db:"oil_quantity"`
	Barcode     string `json:"barcode" db:"barcode"`
	Brand       string `json:"brand" db:"brand"`
	TireType    string `json:"tire_type" db:"tire_type"`
	Category    string `json:"category" db:"category"`
}
