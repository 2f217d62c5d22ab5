package main

import "valorant-stats/internal/cli"

func main() {
	cli.Execute()
}
