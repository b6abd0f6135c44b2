package models

// APIUser is the collaborator's wire shape for a user. Only name, email,
// phone, website and company.name survive ingress; the rest of the
// fields are carried so payloads round-trip the real API unchanged.
type APIUser struct {
	ID       int     `json:"id,omitempty"`
	Name     string  `json:"name"`
	Username string  `json:"username,omitempty"`
	Email    string  `json:"email"`
	Address  Address `json:"address,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Website  string  `json:"website,omitempty"`
	Company  Company `json:"company"`
}

// Address is the nested wire address; it is discarded on ingress.
type Address struct {
	Street  string `json:"street,omitempty"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
	Geo     Geo    `json:"geo,omitempty"`
}

type Geo struct {
	Lat string `json:"lat,omitempty"`
	Lng string `json:"lng,omitempty"`
}

// Company nests the department on the wire under company.name.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}
