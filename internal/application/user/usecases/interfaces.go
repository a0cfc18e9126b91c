package usecases

// PasswordHasher abstracts password hashing so use cases stay free of
// bcrypt specifics.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, email string) (accessToken string, expiresIn int64, err error)
}
