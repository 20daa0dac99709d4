package main

import (
	"github.com/go-home-admin/apidoc/console"
)

func main() {
	console.NewKernel().Run()
}
