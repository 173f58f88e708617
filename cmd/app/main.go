package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"bookshop/cmd"
	bookshophttp "bookshop/internal/adapters/in/http"
	"bookshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db, err := gorm.Open(postgresdriver.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)
	if err = app.MigrateDB(); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateCompleteDueDeliveriesCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := bookshophttp.NewServer(
		app.CreateCreateMemberCommandHandler(),
		app.CreateChangeMemberNameCommandHandler(),
		app.CreateCreateBookCommandHandler(),
		app.CreateUpdateItemCommandHandler(),
		app.CreateCreateCategoryCommandHandler(),
		app.CreateAssignItemCategoryCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllMembersQueryHandler(),
		app.CreateGetAllItemsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
