package main

import (
	"github.com/dulceria/order-svc/internal/app"
	"github.com/dulceria/order-svc/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
