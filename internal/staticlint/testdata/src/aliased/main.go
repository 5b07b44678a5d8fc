package main

import sys "os"

func main() {
	sys.Exit(0) // want "using exit in main"
}
