package main

import "github.com/rustyeddy/tvm/internal/cli"

func main() {
	cli.Execute()
}
