package main

import "github.com/lepinkainen/anisuggest/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
