package main

import (
	"os"

	"github.com/jabley/monkeyinterpreter/cmd/monkey/cmd"
)

func main() {
	os.Exit(cmd.Run())
}
