package main

import "sentinel/cmd"

func main() {
	cmd.Execute()
}
