package uid

import (
	"context"
	"fmt"
	"strings"
)

// Strategy defines which UID generation algorithm to use.
type Strategy string

const (
	StrategySnowflake Strategy = "snowflake"
	StrategyUUIDv7    Strategy = "uuidv7"
)

// Options configures the UID generator.
type Options struct {
	Strategy Strategy

	// NodeID identifies this gateway instance (Snowflake only). Valid range: 0–1023.
	NodeID int64

	// Prefix is prepended to every generated ID, e.g. "sess_".
	Prefix string
}

// UIDGenerator hands out session IDs and call IDs.
// Implementations must be safe for concurrent use.
type UIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// ParseStrategy accepts the config spelling of a strategy. Empty means UUIDv7.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case "", StrategyUUIDv7, "uuid":
		return StrategyUUIDv7, nil
	case StrategySnowflake:
		return StrategySnowflake, nil
	default:
		return "", fmt.Errorf("uid: unknown strategy %q", value)
	}
}

// New creates a UIDGenerator based on the provided options.
func New(opts Options) (UIDGenerator, error) {
	var (
		gen UIDGenerator
		err error
	)
	switch opts.Strategy {
	case StrategySnowflake:
		gen, err = NewSnowflake(opts.NodeID)
	case StrategyUUIDv7:
		gen, err = NewUUIDv7()
	default:
		return nil, fmt.Errorf("uid: unknown strategy %q", opts.Strategy)
	}
	if err != nil {
		return nil, err
	}

	if opts.Prefix != "" {
		gen = WithPrefix(gen, opts.Prefix)
	}
	return gen, nil
}

type prefixed struct {
	next   UIDGenerator
	prefix string
}

// WithPrefix prepends prefix to every ID from gen.
func WithPrefix(gen UIDGenerator, prefix string) UIDGenerator {
	return &prefixed{next: gen, prefix: prefix}
}

func (p *prefixed) Generate(ctx context.Context) (string, error) {
	id, err := p.next.Generate(ctx)
	if err != nil {
		return "", err
	}
	return p.prefix + id, nil
}
