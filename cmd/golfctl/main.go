// Command golfctl is the operator tool for the golf trips backend: it runs
// database migrations and works with round collections outside the server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "golfctl:", err)
		os.Exit(1)
	}
}
