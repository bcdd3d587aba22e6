package models

// Coordinates is a geographic point attached to a user at creation time.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsSet reports whether both components carry a non-zero value. A location
// with a zero component is treated as absent.
func (c Coordinates) IsSet() bool {
	return c.Latitude != 0 && c.Longitude != 0
}

// NewUser is the input of a user creation request. It is built from a
// validated [UserForm], passed once to the creation call and discarded in
// favour of the [User] returned by the API.
type NewUser struct {
	Email string
	Name  string

	// Password is the transient credential. It is only ever written into the
	// registration payload.
	Password string

	// Location is optional. nil means no coordinates were supplied.
	Location *Coordinates
}

// HasLocation reports whether a usable location is attached to u.
func (u NewUser) HasLocation() bool {
	return u.Location != nil && u.Location.IsSet()
}

// User returns the canonical part of u: email and name, without id.
func (u NewUser) User() User {
	return User{Email: u.Email, Name: u.Name}
}
