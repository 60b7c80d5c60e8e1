package main

import (
	"github.com/hance08/ffly/cmd"
)

func main() {
	cmd.Execute()
}
