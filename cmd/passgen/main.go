// cmd/passgen/main.go
package main

import (
	"passgen/internal/app"
	"passgen/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
