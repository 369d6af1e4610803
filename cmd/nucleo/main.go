// cmd/nucleo/main.go
package main

import "nucleo/internal/cli"

func main() {
	cli.Execute()
}
