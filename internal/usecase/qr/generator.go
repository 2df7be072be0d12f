package qr

import (
	"context"
	"fmt"
	"math/rand/v2"

	domainQr "asset-tracker/internal/domain/qrcode"
)

const (
	codePrefix = "QR-"
	codeMin    = 100000
	codeMax    = 999999

	// maxAttempts bounds every collision-resolution loop. Hitting it means
	// the registry is saturated far beyond its design point.
	maxAttempts = 1000

	// MinBatchSize and MaxBatchSize bound a single bulk generation request.
	MinBatchSize = 1
	MaxBatchSize = 100
)

// codeChecker is the slice of the registry the generator needs.
type codeChecker interface {
	Exists(ctx context.Context, code string) (bool, error)
	FindExistingCodes(ctx context.Context, codes []string) ([]string, error)
}

// Generator mints candidate codes and resolves collisions against both the
// in-flight batch and the persisted registry.
type Generator struct {
	registry codeChecker
}

// NewGenerator creates a new code generator backed by the given registry
func NewGenerator(registry codeChecker) *Generator {
	return &Generator{registry: registry}
}

func randomCode() string {
	return fmt.Sprintf("%s%d", codePrefix, codeMin+rand.IntN(codeMax-codeMin+1))
}

// NewBatch produces count distinct codes that do not collide with each other
// or with any persisted code. The registry existence check happens once for
// the whole batch; replacements for persisted collisions are re-checked
// one at a time.
func (g *Generator) NewBatch(ctx context.Context, count int) ([]string, error) {
	if count < MinBatchSize || count > MaxBatchSize {
		return nil, domainQr.ErrInvalidCount
	}

	attempts := 0
	candidates := make(map[string]struct{}, count)
	for len(candidates) < count {
		if attempts >= maxAttempts {
			return nil, domainQr.ErrGenerationExhausted
		}
		attempts++
		candidates[randomCode()] = struct{}{}
	}

	batch := make([]string, 0, count)
	for code := range candidates {
		batch = append(batch, code)
	}

	existing, err := g.registry.FindExistingCodes(ctx, batch)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(existing))
	for _, code := range existing {
		taken[code] = struct{}{}
		delete(candidates, code)
	}

	for len(candidates) < count {
		if attempts >= maxAttempts {
			return nil, domainQr.ErrGenerationExhausted
		}
		attempts++

		code := randomCode()
		if _, dup := candidates[code]; dup {
			continue
		}
		if _, dup := taken[code]; dup {
			continue
		}

		exists, err := g.registry.Exists(ctx, code)
		if err != nil {
			return nil, err
		}
		if exists {
			taken[code] = struct{}{}
			continue
		}

		candidates[code] = struct{}{}
	}

	batch = batch[:0]
	for code := range candidates {
		batch = append(batch, code)
	}

	return batch, nil
}

// NewCode mints a single code that is not yet persisted.
func (g *Generator) NewCode(ctx context.Context) (string, error) {
	for attempts := 0; attempts < maxAttempts; attempts++ {
		code := randomCode()

		exists, err := g.registry.Exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", domainQr.ErrGenerationExhausted
}
