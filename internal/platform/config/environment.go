package config

import (
	"fmt"
	"strings"
)

// Environment selects per-deployment values such as SSO URLs.
type Environment int

const (
	EnvironmentLocal Environment = iota
	EnvironmentDev
	EnvironmentProd
)

// ParseEnvironment accepts "local", "dev" and "prod", plus deployment names that end in
// "-dev" or "-prod" (for example "ic-prod"). Anything else is rejected.
func ParseEnvironment(s string) (Environment, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "local":
		return EnvironmentLocal, nil
	case name == "prod" || strings.HasSuffix(name, "-prod"):
		return EnvironmentProd, nil
	case name == "dev" || strings.HasSuffix(name, "-dev"):
		return EnvironmentDev, nil
	}
	return EnvironmentLocal, fmt.Errorf("unknown environment %q", s)
}

func (e Environment) String() string {
	switch e {
	case EnvironmentDev:
		return "dev"
	case EnvironmentProd:
		return "prod"
	default:
		return "local"
	}
}

// IsProduction reports whether the environment serves real patients.
func (e Environment) IsProduction() bool {
	return e == EnvironmentProd
}
