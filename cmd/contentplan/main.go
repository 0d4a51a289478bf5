package main

import (
	"contentplan/internal/cmd"
)

func main() {
	cmd.Run()
}
