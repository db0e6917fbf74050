package main

import (
	cmd "simplexdss/cmd/cli"
)

func main() {
	cmd.Execute()
}
