package main

import "refinance-agent/cli"

func main() {
	cli.Execute()
}
