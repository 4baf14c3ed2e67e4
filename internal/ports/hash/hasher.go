package hash

// PasswordHasher es la función one-way para secrets almacenados.
// El core la trata como opaca: hash al guardar, verify al autenticar.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hashed string) bool
}
