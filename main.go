package main

import "networth/cmd"

func main() {
	cmd.Execute()
}
