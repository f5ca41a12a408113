package rope

import "runtime/debug"

// modulePath is the import path this library is published under.
const modulePath = "github.com/ropelib/rope"

// Version reports the library version recorded in the embedding binary's
// build metadata: the pinned module version when imported as a dependency,
// or "(devel)" when built from a working tree (and in tests, where no main
// module metadata exists).
func Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	if bi.Main.Path == modulePath && bi.Main.Version != "" {
		return bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path == modulePath {
			if dep.Replace != nil && dep.Replace.Version != "" {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return "(devel)"
}
