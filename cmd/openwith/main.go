package main

import (
	"os"

	"github.com/openwith/openwith/cmd/openwith/commands"
)

func main() {
	os.Exit(commands.Execute())
}
