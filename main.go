package main

import "github.com/xrsl/rsm/cmd"

func main() {
	cmd.Execute()
}
