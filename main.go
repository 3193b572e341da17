package main

import "github.com/remideboer/easytabletopfantasy/cmd"

func main() {
	cmd.Execute()
}
