package main

import (
	_ "time/tzdata"

	"focusplanner/cmd/fp/root"
)

func main() {
	root.Execute()
}
