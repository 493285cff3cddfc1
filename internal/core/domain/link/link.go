package link

type Route string

const (
	RoutePasswordReset Route = "account/password"
	RouteActivation    Route = "account/activate"
)

const TokenParam = "token"

type Builder interface {
	AbsoluteURL(route Route, token string) (string, error)
}
