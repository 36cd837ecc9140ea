//go:build cgo && (android || jni)

// Command vkfftbridge is the native library loaded by
// com.seuprojeto.vkfftlib.VulkanBridge. Build it as a shared object:
//
//	GOOS=android GOARCH=arm64 CGO_ENABLED=1 CC=<ndk clang> \
//	    go build -buildmode=c-shared -o libvkfft.so ./cmd/vkfftbridge
//
// For a desktop JVM add -tags jni and point CGO_CFLAGS at the JDK include
// directories.
package main

/*
#include <jni.h>
#include <stdlib.h>

static jsize arrayLength(JNIEnv *env, jdoubleArray arr) {
	return (*env)->GetArrayLength(env, arr);
}

static void readArray(JNIEnv *env, jdoubleArray arr, jsize len, jdouble *buf) {
	(*env)->GetDoubleArrayRegion(env, arr, 0, len, buf);
}

// Returns NULL with OutOfMemoryError pending if the JVM cannot allocate.
static jdoubleArray newArray(JNIEnv *env, jsize len, const jdouble *buf) {
	jdoubleArray out = (*env)->NewDoubleArray(env, len);
	if (out != NULL && len > 0) {
		(*env)->SetDoubleArrayRegion(env, out, 0, len, buf);
	}
	return out;
}

static jboolean exceptionPending(JNIEnv *env) {
	return (*env)->ExceptionCheck(env);
}

static void throwNullPointer(JNIEnv *env, const char *msg) {
	jclass cls = (*env)->FindClass(env, "java/lang/NullPointerException");
	if (cls != NULL) {
		(*env)->ThrowNew(env, cls, msg);
	}
}
*/
import "C"

import (
	"unsafe"

	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-vkfft/bridge"
	"github.com/cwbudde/algo-vkfft/internal/logcat"
)

func init() {
	bridge.SetLogger(logcat.New(bridge.Tag, zapcore.InfoLevel))
}

func main() {}

//export Java_com_seuprojeto_vkfftlib_VulkanBridge_runVkFFT
func Java_com_seuprojeto_vkfftlib_VulkanBridge_runVkFFT(env *C.JNIEnv, _ C.jobject, input C.jdoubleArray) C.jdoubleArray {
	var in []float64
	valid := input != nil
	if valid {
		n := int(C.arrayLength(env, input))
		in = make([]float64, n)
		if n > 0 {
			C.readArray(env, input, C.jsize(n), (*C.jdouble)(unsafe.Pointer(&in[0])))
		}
		valid = C.exceptionPending(env) == C.JNI_FALSE
	}

	out, err := bridge.Invoke(in, valid)
	if err != nil {
		if C.exceptionPending(env) == C.JNI_FALSE {
			msg := C.CString(err.Error())
			C.throwNullPointer(env, msg)
			C.free(unsafe.Pointer(msg))
		}
		return nil
	}

	var buf *C.jdouble
	if len(out) > 0 {
		buf = (*C.jdouble)(unsafe.Pointer(&out[0]))
	}
	return C.newArray(env, C.jsize(len(out)), buf)
}
