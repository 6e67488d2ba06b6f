package main

import (
	"log"

	"github.com/Biji-Biji-Initiative/elevate-sub001/config"
	"github.com/Biji-Biji-Initiative/elevate-sub001/db"
	"github.com/Biji-Biji-Initiative/elevate-sub001/route"
)

func main() {
	config.Logger()
	config.LoadEnv()

	db.ConnectDB()

	app := config.NewApp()

	route.SetupRoutes(app, db.GetDB(), db.GetSQLDB(), db.GetMongo())

	log.Fatal(app.Listen(":" + config.Env.AppPort))
}
