package vendors

// VendorAllocation ties a vendor to a budget category of an event.
type VendorAllocation struct {
	VendorId string
	Category string
	Comments string
	// AgreedPrice is kept as the merchant entered it, thousands separators and
	// all. ParseCurrency turns it into a number; malformed input counts as 0.
	AgreedPrice string
	// PriceFinalized marks this vendor's price as the authoritative actual cost
	// for its category. At most one allocation per category may be finalized.
	PriceFinalized bool
}
