// Package assignment picks a managing service provider (AMC) for an asset
// from a candidate pool using a verifiable random value.
package assignment

import (
	"fmt"
	"math/big"
	"strings"

	dErrors "tessera/pkg/domain-errors"
)

// reasonTemplates are the fixed justification phrasings. The template is
// derived from the same random value as the selection, keeping the whole
// output deterministic for a fixed draw.
var reasonTemplates = []string{
	"selected %s through verifiable random assignment across %d candidates",
	"%s drawn by provably fair selection from a pool of %d managers",
	"random beacon assigned %s out of %d eligible candidates",
	"%s chosen via unbiased random draw among %d qualified managers",
}

// validHex reports whether the value parses as hex, with or without a 0x
// prefix.
func validHex(randomHex string) bool {
	_, ok := new(big.Int).SetString(strings.TrimPrefix(randomHex, "0x"), 16)
	return ok
}

// Select maps a hex-encoded random value onto the ordered candidate pool:
// index = value mod len(pool). Deterministic for a fixed (randomHex, pool).
func Select(randomHex string, pool []string) (selected string, reason string, err error) {
	if len(pool) == 0 {
		return "", "", dErrors.New(dErrors.CodeInvalidInput, "candidate pool cannot be empty")
	}

	value, ok := new(big.Int).SetString(strings.TrimPrefix(randomHex, "0x"), 16)
	if !ok {
		return "", "", dErrors.Newf(dErrors.CodeInvalidInput, "random value %q is not valid hex", randomHex)
	}

	size := big.NewInt(int64(len(pool)))
	index := new(big.Int).Mod(value, size).Int64()
	selected = pool[index]

	template := reasonTemplates[new(big.Int).Mod(value, big.NewInt(int64(len(reasonTemplates)))).Int64()]
	reason = fmt.Sprintf(template, selected, len(pool))
	return selected, reason, nil
}
