// Command libwsaccept builds the accept computation as a C library.
//
//	go build -buildmode=c-shared -o libwsaccept.so ./cmd/libwsaccept
//	go build -buildmode=c-archive -o libwsaccept.a ./cmd/libwsaccept
//
// The generated libwsaccept.h declares:
//
//	void ws_accept(unsigned char* key, unsigned char* result);
//	int ws_accept_checked(unsigned char* key, size_t key_len, unsigned char* result, size_t result_len);
//	char* ws_status_text(int status);
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"math"
	"unsafe"

	"websocket-accept/internal/boundary"
	"websocket-accept/internal/domain"
)

// statusText is allocated once and never freed; callers must not free the returned strings
var statusText = map[domain.Status]*C.char{}

func init() {
	for _, s := range []domain.Status{
		domain.StatusOK,
		domain.StatusNilPointer,
		domain.StatusShortKey,
		domain.StatusShortAccept,
		domain.StatusInvalidKey,
	} {
		statusText[s] = C.CString(s.String())
	}
	statusText[unknownStatus] = C.CString("Unknown")
}

const unknownStatus domain.Status = math.MinInt32

//export ws_accept
func ws_accept(key *C.uchar, result *C.uchar) {
	boundary.Accept(unsafe.Pointer(key), unsafe.Pointer(result))
}

//export ws_accept_checked
func ws_accept_checked(key *C.uchar, keyLen C.size_t, result *C.uchar, resultLen C.size_t) C.int {
	status := boundary.AcceptChecked(unsafe.Pointer(key), clampLen(keyLen), unsafe.Pointer(result), clampLen(resultLen))
	return C.int(status)
}

//export ws_status_text
func ws_status_text(status C.int) *C.char {
	if text, ok := statusText[domain.Status(status)]; ok {
		return text
	}
	return statusText[unknownStatus]
}

// clampLen converts a C length to int without wrapping negative
func clampLen(n C.size_t) int {
	if uint64(n) > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

func main() {}
