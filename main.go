package main

import "shop-audit/cmd"

func main() {
	cmd.Execute()
}
