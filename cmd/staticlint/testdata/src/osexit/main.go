package main

import "os"

func main() {
	defer cleanup()
	os.Exit(1) // want "avoid direct os.Exit call in main function of main package"
}

func cleanup() {
	os.Exit(2)
}
