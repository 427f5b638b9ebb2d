package main

import "github.com/tristendillon/relscan/cmd"

func main() {
	cmd.Execute()
}
