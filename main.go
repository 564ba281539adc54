package main

import "github.com/glitterhq/glitter/cmd"

func main() {
	cmd.Execute()
}
