package models

// UpsertSecretRequest is the JSON body of the secret upsert call. The remote
// store accepts only ciphertext; EncryptedValue must be a sealed-box
// ciphertext encoded with standard base64, produced against the key
// identified by KeyID.
type UpsertSecretRequest struct {
	EncryptedValue string `json:"encrypted_value"`
	KeyID          string `json:"key_id"`
}

// SecretListResponse is one page of the remote secret listing.
type SecretListResponse struct {
	// TotalCount is the total number of secrets in the repository across
	// all pages.
	TotalCount int `json:"total_count"`

	// Secrets holds the entries of this page. Only names are exposed.
	Secrets []RemoteSecretRef `json:"secrets"`
}
