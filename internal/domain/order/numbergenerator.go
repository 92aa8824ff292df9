package order

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NumberGenerator produces human-readable order numbers.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultNumberGenerator generates numbers in the form ORD-{yyyyMMdd}-{8 hex chars}.
// The random suffix is cryptographically random, so no coordination is needed
// across processes.
type DefaultNumberGenerator struct {
	prefix string
	now    func() time.Time
}

func NewDefaultNumberGenerator(prefix string) *DefaultNumberGenerator {
	if prefix == "" {
		prefix = "ORD"
	}
	return &DefaultNumberGenerator{
		prefix: prefix,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random suffix: %w", err)
	}

	date := g.now().Format("20060102")
	suffix := strings.ToUpper(hex.EncodeToString(buf))

	return fmt.Sprintf("%s-%s-%s", g.prefix, date, suffix), nil
}
