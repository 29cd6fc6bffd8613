package main

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/aquaguard/water-monitor/internal/cloud"
	"github.com/aquaguard/water-monitor/internal/config"
	"github.com/aquaguard/water-monitor/internal/database"
	"github.com/aquaguard/water-monitor/internal/service"
)

func main() {
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
	}

	svcs := service.New(db, opts)

	mqttOpts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(mqttOpts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		if err := svcs.Monitor.FromMQTT(msg.Topic(), msg.Payload()); err != nil {
			log.Error().Err(err).Msg("ingest failed")
		}
	}

	if token := client.Subscribe(config.MQTTTopic(), 0, handler); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("subscribe failed")
	}

	log.Info().Str("topic", config.MQTTTopic()).Msg("ingestor running; Ctrl+C to stop")
	for {
		time.Sleep(10 * time.Second)
	}
}
