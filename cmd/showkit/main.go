package main

import "github.com/nprest/showkit/cmd/showkit/cmd"

func main() {
	cmd.Execute()
}
