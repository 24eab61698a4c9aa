package main

import (
	"log"
)

// Main function just executes root command `coveralls`
func main() {
	if err := RootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
