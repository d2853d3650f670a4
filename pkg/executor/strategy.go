package executor

import (
	"os"

	"github.com/arthur-debert/shkit/pkg/errors"
	"github.com/arthur-debert/shkit/pkg/platform"
)

// Harness kinds accepted by SelectHarness
const (
	KindAuto   = "auto"
	KindPTY    = "pty"
	KindDirect = "direct"
)

// Kinds lists the valid harness kinds
func Kinds() []string {
	return []string{KindAuto, KindPTY, KindDirect}
}

type harnessFactory func(scriptPath string) Harness

// strategies maps a platform family to the harness used when the kind is
// auto. Families not listed get defaultStrategy.
var strategies = map[platform.Family]harnessFactory{
	platform.Windows: func(string) Harness { return DirectHarness{} },
	platform.Linux: func(path string) Harness {
		return ScriptHarness{Path: path, Mode: ScriptCommandString}
	},
}

func defaultStrategy(path string) Harness {
	return ScriptHarness{Path: path, Mode: ScriptArgv}
}

// SelectHarness picks the harness for a platform. kind is one of Kinds;
// an empty kind means auto.
func SelectHarness(p platform.Platform, kind, scriptPath string) (Harness, error) {
	switch kind {
	case "", KindAuto:
		factory, ok := strategies[p.Family]
		if !ok {
			factory = defaultStrategy
		}
		return factory(scriptPath), nil
	case KindPTY:
		if p.Family == platform.Windows {
			return DirectHarness{}, nil
		}
		return PTYHarness{SizeFrom: os.Stdout}, nil
	case KindDirect:
		return DirectHarness{}, nil
	default:
		return nil, errors.Newf(errors.ErrConfigValid, "unknown harness %q", kind).
			WithDetail("valid", Kinds())
	}
}
