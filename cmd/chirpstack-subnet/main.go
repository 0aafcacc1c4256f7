package main

import (
	"github.com/brocaar/chirpstack-subnet/cmd/chirpstack-subnet/cmd"
)

var version string // set by the compiler

func main() {
	cmd.Execute(version)
}
