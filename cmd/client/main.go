package main

import "nceerrors/cmd/client/cmd"

func main() {
	cmd.Execute()
}
