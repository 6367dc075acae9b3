package userapi

// User is the user record shape of the generic REST endpoint.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
}

// RandomUser is the flattened view of one record from the random user
// generator.
type RandomUser struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	PictureURL string `json:"picture_url"`
}

// FullName returns "First Last".
func (u RandomUser) FullName() string {
	return u.FirstName + " " + u.LastName
}

// randomUserEnvelope mirrors the generator's wire format: a results array
// of nested records.
type randomUserEnvelope struct {
	Results []struct {
		Name struct {
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
		Email   string `json:"email"`
		Picture struct {
			Medium string `json:"medium"`
		} `json:"picture"`
	} `json:"results"`
}
