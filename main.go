package main

import "github.com/ATClus/psa-api-sub000/cmd"

func main() {
	cmd.Execute()
}
