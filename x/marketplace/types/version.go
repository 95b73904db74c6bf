package types

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ContractName    = "names-marketplace"
	ContractVersion = "2.0.0"
)

// VersionInfo is the stored (name, version) record gating migrations.
type VersionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func parseSemver(v string) ([3]uint64, error) {
	var out [3]uint64
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return out, fmt.Errorf("malformed version %q", v)
	}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return out, fmt.Errorf("malformed version %q: %w", v, err)
		}
		out[i] = n
	}
	return out, nil
}

// SemverLess reports whether a < b. Both must be plain MAJOR.MINOR.PATCH.
func SemverLess(a, b string) (bool, error) {
	av, err := parseSemver(a)
	if err != nil {
		return false, err
	}
	bv, err := parseSemver(b)
	if err != nil {
		return false, err
	}
	for i := 0; i < 3; i++ {
		if av[i] != bv[i] {
			return av[i] < bv[i], nil
		}
	}
	return false, nil
}
