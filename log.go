package glp

// #cgo LDFLAGS: -lglpk
// #include <glpk.h>
/*
// https://golang.org/issue/19837
extern int termHook(void *info, const char *s);
static void glp_install_term_hook(void *info) { glp_term_hook(termHook, info); }
static void glp_remove_term_hook(void) { glp_term_hook(NULL, NULL); }
*/
import "C"

type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

// installTermHook redirects GLPK's terminal output to the problem's logger
// for the duration of a backend call. The hook is global in GLPK, which is
// fine here: a Problem is single-owner and never shared across goroutines.
// The returned function uninstalls the hook.
func (p *Problem) installTermHook() func() {
	ref := saveRef(p.logger)
	C.glp_install_term_hook(ref)
	return func() {
		C.glp_remove_term_hook()
		dropRef(ref)
	}
}
