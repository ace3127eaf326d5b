//go:build tinygo

package main

import (
	"fx3d/app"
	"fx3d/hal"
)

func main() {
	w, h := app.DefaultConfig().Size()
	app.Run(hal.New(w, h))
}
