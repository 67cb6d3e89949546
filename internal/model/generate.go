package model

// CharsetRequest backs both the password and the token generators.
// Absent flags default to true, an absent length to the tool default.
type CharsetRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

type PasswordResponse struct {
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UuidRequest struct {
	Count     *int  `json:"count"`
	Hyphens   *bool `json:"hyphens"`
	Uppercase bool  `json:"uppercase"`
}

type UuidResponse struct {
	UUIDs []string `json:"uuids"`
}

type CreditCardRequest struct {
	Count  int    `json:"count"`
	Issuer string `json:"issuer"` // visa, mastercard, amex, discover
}

type CreditCard struct {
	Number string `json:"number"`
	Issuer string `json:"issuer"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

type CreditCardResponse struct {
	Cards []CreditCard `json:"cards"`
}

type FakeUserRequest struct {
	Count  int    `json:"count"`
	Locale string `json:"locale"` // en or cn
}

type FakeUser struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type FakeUserResponse struct {
	Users []FakeUser `json:"users"`
}
