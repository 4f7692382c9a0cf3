package auth

// OAuthIdentity represents user information obtained from an OAuth provider.
type OAuthIdentity struct {
	ProviderID    string
	Username      string
	Discriminator *string
	Email         *string
	AvatarHash    *string
}

// AvatarURL builds the CDN URL for the identity's avatar, or nil when
// the provider returned no avatar hash.
func (i OAuthIdentity) AvatarURL() *string {
	if i.AvatarHash == nil || *i.AvatarHash == "" {
		return nil
	}
	url := "https://cdn.discordapp.com/avatars/" + i.ProviderID + "/" + *i.AvatarHash + ".png"
	return &url
}
