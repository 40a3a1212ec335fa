package gateway

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/session"
)

// stateTokenSource reads the bearer token from the plain durable slot
// on every request. The gateway deliberately reads this slot rather
// than the structured session snapshot; the session store keeps the
// two paired.
type stateTokenSource struct {
	state ports.StateStore
}

// NewStateTokenSource returns an oauth2.TokenSource backed by the
// plain-token state slot. An absent slot yields an empty token, which
// the transport treats as "send unauthenticated".
func NewStateTokenSource(state ports.StateStore) oauth2.TokenSource {
	return stateTokenSource{state: state}
}

func (s stateTokenSource) Token() (*oauth2.Token, error) {
	data, err := s.state.Get(context.Background(), session.TokenKey)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return &oauth2.Token{}, nil
		}
		return nil, err
	}
	return &oauth2.Token{AccessToken: string(data), TokenType: "Bearer"}, nil
}
