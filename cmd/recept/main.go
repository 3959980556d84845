package main

import "github.com/dv222bk/3-1-recept-pa-fil/internal/cli"

func main() {
	cli.Execute()
}
