package middlewares

//go:generate mockgen -source=link_provider.go -destination=../mocks/link.go -package=mocks

// LinkProvider drives the OAuth-style flow against the brokerage
// account-linking provider. Its internals are a black box; the application
// only consumes the authorize redirect and the callback's public token.
type LinkProvider interface {
	StartLink(ctx *AppContext) (authURL string, err error)
	HandleCallback(ctx *AppContext) (publicToken string, err error)
}
