package main

import (
	"backend/config"
	"backend/routes"
	"backend/utils"
)

func main() {
	logger := config.InitLogger()
	defer logger.Sync()

	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()
	r.Run(":8080")
}
