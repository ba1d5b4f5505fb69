package main

import "github.com/agiangrant/picklist/cmd/picklist/commands"

// Set via ldflags.
var version = "dev"

func main() {
	commands.SetVersion(version)
	commands.Execute()
}
