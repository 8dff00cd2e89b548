package main

import "github.com/soulgarden/cbpro/cmd"

func main() {
	cmd.Execute()
}
