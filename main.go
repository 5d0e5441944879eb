package main

import "housenumber-audit/cmd"

func main() {
	cmd.Execute()
}
