package main

import "github.com/gaurav-prasanna/docsummary/cmd"

func main() {
	cmd.Execute()
}
