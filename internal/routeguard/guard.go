package routeguard

// Package routeguard implements role-based route authorization as pure
// decision functions over the current session snapshot. Guards carry no
// state of their own and are re-evaluated on every navigation.

import (
	domainauth "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/domain/auth"
)

// Screen paths. The dashboard is the default authenticated landing
// page; login doubles as the target for every unmatched path.
const (
	PathLogin          = "/login"
	PathRegister       = "/register"
	PathForgotPassword = "/forgot-password"
	PathResetPassword  = "/reset-password"
	PathVerifyAccount  = "/verify-account"
	PathDashboard      = "/dashboard"
)

// Decision is the outcome of evaluating a guard: render the screen, or
// redirect elsewhere.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Allow is the pass-through decision.
func Allow() Decision { return Decision{Allowed: true} }

// Redirect is a decision sending the navigation to path instead.
func Redirect(path string) Decision { return Decision{RedirectTo: path} }

// Guard decides whether a navigation may proceed given the current
// session. Evaluation must be pure: same session in, same decision out.
type Guard interface {
	Evaluate(sess domainauth.Session) Decision
}

// GuardFunc adapts a function to the Guard interface.
type GuardFunc func(sess domainauth.Session) Decision

func (f GuardFunc) Evaluate(sess domainauth.Session) Decision { return f(sess) }

// RequireAuthenticated redirects unauthenticated sessions to the login
// page. The originally requested path is captured by the navigator so
// login can resume there.
func RequireAuthenticated() Guard {
	return GuardFunc(func(sess domainauth.Session) Decision {
		if !sess.IsAuthenticated {
			return Redirect(PathLogin)
		}
		return Allow()
	})
}

// RequireRole allows only authenticated sessions holding the given
// role. Under-privileged sessions are redirected to the landing page,
// never to login: the user is authenticated, just not entitled.
func RequireRole(role domainauth.Role) Guard {
	return GuardFunc(func(sess domainauth.Session) Decision {
		if !sess.IsAuthenticated {
			return Redirect(PathLogin)
		}
		if sess.Role != role {
			return Redirect(PathDashboard)
		}
		return Allow()
	})
}

// RequireUnauthenticated gates public-only screens (login, register,
// password reset). Authenticated sessions are sent to returnTo when a
// pre-login target was captured, else to the landing page.
func RequireUnauthenticated(returnTo string) Guard {
	return GuardFunc(func(sess domainauth.Session) Decision {
		if sess.IsAuthenticated {
			if returnTo != "" {
				return Redirect(returnTo)
			}
			return Redirect(PathDashboard)
		}
		return Allow()
	})
}

// Chain evaluates guards root-to-leaf, short-circuiting on the first
// redirect.
func Chain(guards ...Guard) Guard {
	return GuardFunc(func(sess domainauth.Session) Decision {
		for _, g := range guards {
			if d := g.Evaluate(sess); !d.Allowed {
				return d
			}
		}
		return Allow()
	})
}
