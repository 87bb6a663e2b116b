package main

import "chargecalc/backend/services/calculator-service/internal/cli"

func main() {
	cli.Execute()
}
