package main

import (
	"os"

	"github.com/meridianbank/navkit/cmd/bankapp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
