// cmd/fastacheck/main.go
package main

import (
	"fastacheck/internal/app"
	"fastacheck/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
