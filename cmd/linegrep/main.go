package main

import (
	"os"

	"github.com/linegrep/linegrep/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
