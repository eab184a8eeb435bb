package main

import (
	"github.com/Sena-ops/akafinder/cmd"
)

func main() {
	cmd.Execute()
}
