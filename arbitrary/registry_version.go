package arbitrary

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ModuleVersion is this module's own semantic version, consulted by
// RequireAPIVersion when an externally-registered provider declares a
// minimum compatible version — mirrors Orizon's semver-gated plugin
// compatibility check, repurposed here to gate registry providers instead
// of toolchain plugins.
const ModuleVersion = "1.0.0"

// RequireAPIVersion panics if constraint does not admit ModuleVersion; a
// Provider that depends on registry behavior introduced in a later
// release should call this before Register so a mismatch surfaces at
// registration time, not on first draw.
func RequireAPIVersion(constraint string) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		panic(fmt.Sprintf("arbitrary: invalid version constraint %q: %v", constraint, err))
	}
	v, err := semver.NewVersion(ModuleVersion)
	if err != nil {
		panic(fmt.Sprintf("arbitrary: invalid module version %q: %v", ModuleVersion, err))
	}
	if !c.Check(v) {
		panic(fmt.Sprintf("arbitrary: registry provider requires %q, module is %s", constraint, ModuleVersion))
	}
}
