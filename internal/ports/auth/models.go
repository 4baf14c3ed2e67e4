package auth

// Claims representa la información extraída del token.
// Solo el subject: el role se resuelve SIEMPRE contra storage,
// no viaja en el token.
type Claims struct {
	UserID string
}
