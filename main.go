package main

import "sysdash/cmd"

func main() {
	cmd.Execute()
}
