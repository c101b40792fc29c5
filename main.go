package main

import (
	"os"

	"prodtable/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
