package main

import "github.com/sangkips/receipt-api/internal/presentation/cli"

func main() {
	cli.Execute()
}
