package main

import "github.com/BlackRoad-OS/blackroad-os-metrics/cmd"

func main() {
	cmd.Execute()
}
