package main

import "github.com/i474232898/timezone-weather/internal/cli"

func main() {
	cli.Execute()
}
