//go:build android && cgo

package logcat

/*
#cgo LDFLAGS: -llog
#include <stdlib.h>
#include <android/log.h>
*/
import "C"

import "unsafe"

func platformWrite(prio Priority, tag, msg string) {
	ctag := C.CString(tag)
	cmsg := C.CString(msg)
	C.__android_log_write(C.int(prio), ctag, cmsg)
	C.free(unsafe.Pointer(cmsg))
	C.free(unsafe.Pointer(ctag))
}
