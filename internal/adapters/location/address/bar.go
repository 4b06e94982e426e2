package address

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/velolib/valolab/internal/ports"
)

var ErrInvalidURL = errors.New("invalid share url")

// Bar is an in-memory address bar. ReplaceQuery rewrites the URL in place and
// keeps no history.
type Bar struct {
	u *url.URL
}

var _ ports.Location = (*Bar)(nil)

func New(raw string) (*Bar, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q must be absolute", ErrInvalidURL, raw)
	}

	return &Bar{u: u}, nil
}

func (b *Bar) Query(key string) (string, bool) {
	values, err := url.ParseQuery(b.u.RawQuery)
	if err != nil && len(values) == 0 {
		return "", false
	}

	vals, ok := values[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// ReplaceQuery leaves only key=value in the query and drops the fragment,
// like replacing the address with path?key=value.
func (b *Bar) ReplaceQuery(key, value string) error {
	if key == "" {
		return errors.New("query key is empty")
	}

	b.u.RawQuery = url.Values{key: []string{value}}.Encode()
	b.u.Fragment = ""
	b.u.RawFragment = ""
	return nil
}

func (b *Bar) String() string {
	return b.u.String()
}
