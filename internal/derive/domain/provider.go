package domain

// UserInputProvider supplies the six validated inputs of one derivation.
// Concrete bindings: Input (programmatic, also the test fixture) and the
// interactive prompter in internal/prompt.
type UserInputProvider interface {
	UserID() UserID
	MasterPassword() MasterPassword
	ServiceID() ServiceID
	Generation() Generation
	CharSet() CharSet
	PasswordLength() PasswordLength
}

// Input is the programmatic UserInputProvider binding: a bag of already
// validated values.
type Input struct {
	userID         UserID
	masterPassword MasterPassword
	serviceID      ServiceID
	generation     Generation
	charSet        CharSet
	passwordLength PasswordLength
}

// NewInput aggregates validated values into a UserInputProvider.
func NewInput(
	userID UserID,
	masterPassword MasterPassword,
	serviceID ServiceID,
	generation Generation,
	charSet CharSet,
	passwordLength PasswordLength,
) *Input {
	return &Input{
		userID:         userID,
		masterPassword: masterPassword,
		serviceID:      serviceID,
		generation:     generation,
		charSet:        charSet,
		passwordLength: passwordLength,
	}
}

// UserID returns the user identifier.
func (i *Input) UserID() UserID {
	return i.userID
}

// MasterPassword returns the master password.
func (i *Input) MasterPassword() MasterPassword {
	return i.masterPassword
}

// ServiceID returns the service identifier.
func (i *Input) ServiceID() ServiceID {
	return i.serviceID
}

// Generation returns the rotation counter.
func (i *Input) Generation() Generation {
	return i.generation
}

// CharSet returns the selected alphabet.
func (i *Input) CharSet() CharSet {
	return i.charSet
}

// PasswordLength returns the requested output length.
func (i *Input) PasswordLength() PasswordLength {
	return i.passwordLength
}
