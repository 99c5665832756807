package main

import "github.com/o1x3/surge-bench/cmd"

func main() {
	cmd.Execute()
}
