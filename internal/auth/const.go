package auth

type SessionKey string

var (
	SessionKeyUserData         SessionKey = "user_data"
	SessionKeyAPIToken         SessionKey = "api_token"
	SessionKeyAuthenticated    SessionKey = "authenticated"
	SessionKeyCreatedAt        SessionKey = "created_at"
	SessionKeyLinkState        SessionKey = "link_state"
	SessionKeyLinkNonce        SessionKey = "link_nonce"
	SessionKeyLinkCodeVerifier SessionKey = "link_code_verifier"
)
