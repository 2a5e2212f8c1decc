package builtins

import "github.com/classad-go/classad/internal/value"

// stubbed are well-known function names this engine does not implement
// (the time/regex/environment library lives outside the expression
// core). They are registered so the dispatch table has a documented
// boundary: Registry.Has reports them as known. Calling one yields the
// same plain Error value that an unknown function name yields.
var stubbed = []string{
	"time", "strftime", "formatTime", "regexp", "interval", "splitUserName", "envV2",
}

func registerStubs(r *Registry) {
	for _, name := range stubbed {
		r.register(name, func([]value.Value) value.Value { return value.Error{} })
	}
}
