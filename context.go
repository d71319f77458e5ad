package glp

// #cgo LDFLAGS: -lglpk
// #include <glpk.h>
// #include <stdlib.h>
import "C"

import (
	"context"
	"sync"
	"unsafe"
)

/*
 This code is used to work around the garbage collector and keep track of objects passed to callback code.
 Inspired by github.com/mattn/go-pointer
*/

var (
	refsMu sync.Mutex
	refs   = make(map[unsafe.Pointer]interface{})
)

func saveRef(ref interface{}) unsafe.Pointer {
	refsMu.Lock()
	defer refsMu.Unlock()

	var p unsafe.Pointer = C.malloc(C.size_t(1))
	if p == nil {
		panic("could not allocate memory for CGO pointer tracking")
	}

	refs[p] = ref

	return p
}

func loadRef(ptr unsafe.Pointer) interface{} {
	refsMu.Lock()
	defer refsMu.Unlock()

	return refs[ptr]
}

func dropRef(ptr unsafe.Pointer) {
	refsMu.Lock()
	defer refsMu.Unlock()

	delete(refs, ptr)
	C.free(ptr)
}

//export termHook
func termHook(info unsafe.Pointer, msg *C.char) C.int {
	logger, ok := loadRef(info).(Logger)
	if ok {
		logger.Print(C.GoString(msg))
	}

	// non-zero suppresses GLPK's own terminal output
	return 1
}

//export mipCallback
func mipCallback(tree *C.glp_tree, info unsafe.Pointer) {
	ctx, ok := loadRef(info).(context.Context)
	if ok && ctx.Err() != nil {
		C.glp_ios_terminate(tree)
	}
}
