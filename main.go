package main

import "github.com/gaurav-prasanna/cookpipe/cmd"

func main() {
	cmd.Execute()
}
