package main

import (
	"os"

	"github.com/baechuer/hbnb-service/api/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
