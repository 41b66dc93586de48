package main

import (
	"github.com/ertansel/siteapi/config"
	"github.com/ertansel/siteapi/models"
	"github.com/ertansel/siteapi/routes"
	"github.com/ertansel/siteapi/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.Article{}, &models.EngagementSession{}, &models.Comment{}, &models.PageView{})

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
