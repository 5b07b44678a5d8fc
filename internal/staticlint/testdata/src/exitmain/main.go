package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("start")
	if len(os.Args) > 1 {
		os.Exit(2) // want "using exit in main"
	}
	defer func() {
		os.Exit(3)
	}()
	os.Exit(1) // want "using exit in main"
}

func exit() {
	os.Exit(1)
}
