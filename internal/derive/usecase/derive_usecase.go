package usecase

import (
	"github.com/allisson/derivepass/internal/derive/domain"
	"github.com/allisson/derivepass/internal/derive/service"
)

// deriveUseCase implements DeriveUseCase as a strict three-stage pipeline:
// master secret, then service secret, then character mapping.
type deriveUseCase struct {
	masterSecrets  service.MasterSecretDeriver
	serviceSecrets service.ServiceSecretDeriver
	passwords      service.PasswordMapper
}

// NewDeriveUseCase creates a DeriveUseCase from the three stage implementations.
func NewDeriveUseCase(
	masterSecrets service.MasterSecretDeriver,
	serviceSecrets service.ServiceSecretDeriver,
	passwords service.PasswordMapper,
) DeriveUseCase {
	return &deriveUseCase{
		masterSecrets:  masterSecrets,
		serviceSecrets: serviceSecrets,
		passwords:      passwords,
	}
}

// NewDefaultDeriveUseCase creates a DeriveUseCase wired with the production
// stage implementations.
func NewDefaultDeriveUseCase() DeriveUseCase {
	return NewDeriveUseCase(
		service.NewMasterSecretDeriver(),
		service.NewServiceSecretDeriver(),
		service.NewPasswordMapper(),
	)
}

// Run derives the password. Intermediate secrets exist only for the duration
// of the call and are zeroed before it returns.
func (u *deriveUseCase) Run(input domain.UserInputProvider) (domain.DerivedPass, error) {
	masterSecret, err := u.masterSecrets.Derive(input.UserID(), input.MasterPassword())
	if err != nil {
		return domain.DerivedPass{}, err
	}
	defer masterSecret.Zero()

	serviceSecret, err := u.serviceSecrets.Derive(
		masterSecret,
		input.ServiceID(),
		input.Generation(),
		input.PasswordLength(),
	)
	if err != nil {
		return domain.DerivedPass{}, err
	}
	defer serviceSecret.Zero()

	return u.passwords.Map(serviceSecret, input.CharSet(), input.PasswordLength())
}
