package ports

// CredentialHasher produces and verifies one-way digests of secrets. Hash
// salts per call, so two digests of the same secret differ; Verify compares
// in constant time against the stored digest.
type CredentialHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}
