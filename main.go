package main

import "match-tracker/cmd"

func main() {
	cmd.Execute()
}
