package main

import "pnpmcheck/cmd"

func main() {
	cmd.Execute()
}
