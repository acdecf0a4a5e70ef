package main

import (
	"assetplanner/cmd"
)

func main() {
	cmd.Execute()
}
