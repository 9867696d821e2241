package main

import (
	"os"

	"github.com/000hahaha000/CSharp.lua/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
