package main

import (
	"log"

	"github.com/Axect/RLAI/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		log.Fatalf("rlai: %v", err)
	}
}
