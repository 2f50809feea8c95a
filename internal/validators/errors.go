package validators

import "errors"

var (
	ErrMalformedSecretsJSON = errors.New("desired secrets must be a JSON array of {\"name\",\"value\"} objects")
	ErrMissingNameField     = errors.New("missing \"name\" field")
	ErrMissingValueField    = errors.New("missing \"value\" field")
	ErrEmptySecretName      = errors.New("secret name cannot be empty")
	ErrInvalidSecretName    = errors.New("secret name must contain only letters, digits and underscores and must not start with a digit")
	ErrReservedSecretName   = errors.New("secret name uses a reserved prefix")
	ErrDuplicateSecretName  = errors.New("duplicate secret name")
)
