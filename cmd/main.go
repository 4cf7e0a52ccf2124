package main

import (
	"github.com/Rabsxd/water-reminder-app-sub001/config"
	"github.com/Rabsxd/water-reminder-app-sub001/routes"
	"github.com/Rabsxd/water-reminder-app-sub001/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
