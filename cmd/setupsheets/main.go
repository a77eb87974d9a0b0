package main

import "github.com/CopelandCodes/setupsheets/internal/cli"

func main() {
	cli.Execute()
}
