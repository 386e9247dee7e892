package auth

// Claims es lo que sabemos del caller una vez verificado el token.
// EntityID es la entidad (kaupapa) en cuyo nombre actúa.
type Claims struct {
	UserID   string
	Email    string
	EntityID string
}
