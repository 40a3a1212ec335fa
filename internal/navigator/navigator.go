package navigator

// Package navigator tracks the client-side location and applies the
// route-authorization table on every navigation. It is the seam
// between the guard tree and whatever presentation layer mounts
// screens.

import (
	"log/slog"
	"sync"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/routeguard"
)

// maxRedirects bounds guard-chain hops per navigation. The table is
// loop-free, so anything past a couple of hops is a defect worth
// surfacing rather than spinning on.
const maxRedirects = 8

// Options groups dependencies for Navigator.
type Options struct {
	Table    *routeguard.Table
	Sessions ports.SessionReader
	Logger   *slog.Logger
}

// Navigator holds the current path and the captured pre-login target.
type Navigator struct {
	table    *routeguard.Table
	sessions ports.SessionReader
	logger   *slog.Logger

	mu       sync.Mutex
	current  string
	captured string
}

// New constructs a Navigator starting at the login screen.
func New(opts Options) *Navigator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Navigator{
		table:    opts.Table,
		sessions: opts.Sessions,
		logger:   logger,
		current:  routeguard.PathLogin,
	}
}

// CurrentPath returns the path currently mounted.
func (n *Navigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate requests a path change. Guards are evaluated root-to-leaf
// and redirects followed until a screen is allowed; the final path is
// returned. When an unauthenticated session is bounced to login, the
// originally requested path is captured so a later login can resume
// there.
func (n *Navigator) Navigate(path string) string {
	sess := n.sessions.Snapshot()

	n.mu.Lock()
	defer n.mu.Unlock()

	requested := path
	for i := 0; i < maxRedirects; i++ {
		d := n.table.Resolve(path, sess, n.captured)
		if d.Allowed {
			if path == n.captured {
				// Resumed the captured target; stop carrying it.
				n.captured = ""
			}
			n.current = path
			return path
		}

		if d.RedirectTo == routeguard.PathLogin && !sess.IsAuthenticated && n.table.Protected(requested) {
			n.captured = requested
		}
		path = d.RedirectTo
	}

	n.logger.Warn("navigation redirect limit reached", slog.String("requested", requested))
	n.current = routeguard.PathLogin
	return n.current
}

// Force performs a hard location change without guard evaluation. Used
// by the gateway's 401 handler, mirroring a raw location assignment.
func (n *Navigator) Force(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = path
}

// CapturedTarget returns the pre-login path recorded by the last
// bounce to login, if any.
func (n *Navigator) CapturedTarget() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.captured
}
