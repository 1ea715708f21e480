package main

import "github.com/attestra/attestra-go/internal/cli"

func main() {
	cli.Execute()
}
