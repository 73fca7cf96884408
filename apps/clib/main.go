package main

import "C"
import (
	"os"
	"unsafe"

	"github.com/tutils/trand/cmd"
	"github.com/tutils/trand/rng"
)

//export RunCmd
func RunCmd(cargs **C.char, size C.int) {
	// 将 C 字符串数组转换为 Go []string
	args := os.Args[:1]
	ptr := unsafe.Pointer(cargs)
	for i := 0; i < int(size); i++ {
		// 获取第 i 个元素的指针
		cStrPtr := (**C.char)(unsafe.Pointer(uintptr(ptr) + uintptr(i)*unsafe.Sizeof(uintptr(0))))
		args = append(args, C.GoString(*cStrPtr))
	}
	os.Args = args
	cmd.Execute()
}

//export DeriveSeed
func DeriveSeed() C.ulonglong {
	return C.ulonglong(rng.DeriveSeed())
}

func main() {} // 必须的空白主函数
