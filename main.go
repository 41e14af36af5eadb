package main

import (
	"github.com/okanite/minibank/cmd"
)

func main() {
	cmd.Execute()
}
