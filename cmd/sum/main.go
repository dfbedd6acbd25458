package main

import (
	"os"

	"github.com/pengelbrecht/sum/cmd/sum/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
