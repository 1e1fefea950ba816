package main

import "Dinner-For-Five/cmd/cli"

func main() {
	cli.Execute()
}
