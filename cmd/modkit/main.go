// Command modkit runs the capability framework in a GLFW window or a terminal.
package main

import (
	"runtime"

	"github.com/go-theft-auto/modkit/cmd/modkit/cmd"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cmd.Execute()
}
