package request_models

// SelectSlotRequest books one exam slot. StartsAt is the RFC3339 timestamp of
// a slot previously returned by the slot listing.
type SelectSlotRequest struct {
	StartsAt string `json:"starts_at" binding:"required"`
	ZipCode  string `json:"zip_code" binding:"required"`
}
