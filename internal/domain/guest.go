package domain

// GuestInfo holds the guest details collected by the booking wizard
type GuestInfo struct {
	Name  string
	Email string
	Phone string

	// IDDocument is a reference to the uploaded identity document, empty if none
	IDDocument    string
	AgreedToRules bool
}

// HasIDDocument returns true if an identity document was attached
func (g GuestInfo) HasIDDocument() bool {
	return g.IDDocument != ""
}
