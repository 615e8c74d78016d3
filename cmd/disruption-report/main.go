package main

import "github.com/fairwindsops/disruption-report/cmd"

func main() {
	cmd.Execute()
}
