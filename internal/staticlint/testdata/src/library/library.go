package library

import "os"

func main() {
	os.Exit(1)
}

// Main is exported to keep main used.
func Main() {
	main()
}
