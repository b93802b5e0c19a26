package validation

var std = New()

// ValidateEmail rejects empty or malformed addresses
func ValidateEmail(email string) *FieldError {
	return std.Var("email", email, "required,emailaddr")
}

// ValidatePhone accepts exactly ten decimal digits, no separators or country code
func ValidatePhone(phone string) *FieldError {
	return std.Var("phone", phone, "required,phone")
}

// ValidatePassword checks the plaintext length before hashing. Length is counted in characters;
// the 72 byte ceiling is bcrypt's input limit.
func ValidatePassword(password string) *FieldError {
	return std.Var("password", password, "required,min=6,maxbytes=72")
}
