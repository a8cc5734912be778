package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MarcusWeller/CampusVoice/app/controllers"
	"github.com/MarcusWeller/CampusVoice/app/repository"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/cache"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/database"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/env"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/localstore"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/persistence"
	"github.com/MarcusWeller/CampusVoice/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	local, err := localstore.New(env.GetEnv("LOCAL_STORE_DIR", "./data"))
	if err != nil {
		panic(fmt.Sprintf("local store setup failed: %v", err))
	}

	// Remote repositories need a live database connection. When the database
	// never came up the adapter runs on the local store alone.
	var (
		complaintRemote persistence.ComplaintRemote = persistence.UnavailableComplaintRemote{}
		feedbackRemote  persistence.FeedbackRemote  = persistence.UnavailableFeedbackRemote{}
		configRemote    persistence.ConfigRemote    = persistence.UnavailableConfigRemote{}
	)
	if database.GetDB() != nil {
		repository.InitializeFactory(database.GetDB())
		repos := repository.GetGlobalRepositories()
		complaintRemote = repos.Complaint
		feedbackRemote = repos.Feedback
		configRemote = repos.Setting
	}

	adapter := persistence.New(complaintRemote, feedbackRemote, configRemote, local, persistence.DefaultTimeout)
	controllers.Initialize(adapter)

	// init fiber app
	app := fiber.New(fiber.Config{
		AppName: "CampusVoice",
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// ROUTER
	router.InstallRouter(app)

	return app
}
