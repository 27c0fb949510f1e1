package main

import "libraryhub/cmd"

func main() {
	cmd.Execute()
}
