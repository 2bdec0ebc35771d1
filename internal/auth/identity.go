package auth

// Identity represents a normalized external authentication identity
// returned by an OAuth provider. It contains facts only, no decisions.
type Identity struct {
	Provider      string   // e.g. "google"
	Subject       string   // provider-scoped unique user identifier (sub)
	Email         string   // email asserted by the provider
	EmailVerified bool     // whether the provider asserts email ownership
	GivenName     string   // first name, when the provider supplies one
	FamilyName    string   // last name, when the provider supplies one
	DisplayName   string   // full display name, fallback for name splitting
	Photos        []string // profile photo URLs, first one becomes the avatar
}
