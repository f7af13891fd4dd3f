package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// version is a parsed "major.minor[.patch][-prerelease]" string.
type version struct {
	major      int
	minor      int
	patch      int
	prerelease string
}

// parseVersion parses a version string such as "2.0", "3.0.3" or "3.1.0-rc1".
func parseVersion(s string) (version, error) {
	var v version
	base, pre, _ := strings.Cut(s, "-")
	v.prerelease = pre

	parts := strings.Split(base, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return version{}, fmt.Errorf("invalid version format: %q", s)
	}
	nums := [3]int{}
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return version{}, fmt.Errorf("invalid version component %q in %q", part, s)
		}
		nums[i] = int(n)
	}
	v.major, v.minor, v.patch = nums[0], nums[1], nums[2]
	return v, nil
}

// series returns the "major.minor" part of v.
func (v version) series() string {
	return strconv.Itoa(v.major) + "." + strconv.Itoa(v.minor)
}

// String renders v the way it would be written in a document.
func (v version) String() string {
	s := v.series() + "." + strconv.Itoa(v.patch)
	if v.prerelease != "" {
		s += "-" + v.prerelease
	}
	return s
}
