package main

import "github.com/cmmoran/prismaconvert/cmd"

func main() {
	cmd.Execute()
}
