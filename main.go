package main

import "github.com/catshell/catsh/cmd"

func main() {
	cmd.Execute()
}
