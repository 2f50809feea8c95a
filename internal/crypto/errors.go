package crypto

import "errors"

// ErrInvalidPublicKey indicates that the repository public key is not valid
// standard base64 or does not decode to 32 bytes. Because one key seals
// every secret of a run, this error is fatal for the whole run.
var ErrInvalidPublicKey = errors.New("invalid repository public key")
