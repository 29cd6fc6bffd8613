package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aquaguard/water-monitor/internal/cloud"
	"github.com/aquaguard/water-monitor/internal/config"
	"github.com/aquaguard/water-monitor/internal/database"
	httpHandlers "github.com/aquaguard/water-monitor/internal/http"
	"github.com/aquaguard/water-monitor/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	opts := service.Options{
		HistoryCapacity: config.HistoryCapacity(),
		DangerWindow:    config.DangerWindowHours(),
		WarningWindow:   config.WarningWindowHours(),
	}
	if config.UseCloudServices() {
		if sns, err := cloud.NewSNSClient(config.AWSRegion(), config.SNSTopicArn()); err != nil {
			log.Error().Err(err).Msg("sns client init failed")
		} else {
			opts.SNS = sns
		}
		if s3, err := cloud.NewS3Client(config.AWSRegion(), config.S3Bucket()); err != nil {
			log.Error().Err(err).Msg("s3 client init failed")
		} else {
			opts.S3 = s3
		}
	}

	svcs := service.New(db, opts)
	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	httpHandlers.Register(app, svcs)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}
