package main

import (
	"log"
	_ "time/tzdata"

	"github.com/xmustafa5/Tablu-stations-sub001/internal/app"
	"github.com/xmustafa5/Tablu-stations-sub001/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
