package entities

import "time"

// Account is the profile row of an authenticated user.
//
// The id is issued by the external auth provider (JWT subject); this service
// never creates identities, it only stores profile data and the premium flag.
type Account struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Premium   bool      `json:"premium"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AsParty pre-fills the contractor block of a new estimate.
func (a Account) AsParty() Party {
	return Party{Name: a.FullName, Company: a.Company, Phone: a.Phone, Email: a.Email, Address: a.Address}
}
