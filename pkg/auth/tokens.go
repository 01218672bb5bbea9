package auth

import "context"

// TokenIssuer abstracts token creation and refresh-token verification
// (e.g., JWT). It allows use cases to stay framework-agnostic and is the
// seam where a revocation-aware implementation could be swapped in later.
type TokenIssuer interface {
	// Issue mints a fresh access/refresh pair for the given subject.
	Issue(ctx context.Context, subjectID, email string) (TokenPair, error)
	// VerifyRefresh checks a token against the refresh domain and returns
	// the subject it was issued for.
	VerifyRefresh(ctx context.Context, token string) (subjectID, email string, err error)
}
