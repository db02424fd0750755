package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/config"
	"bikeshare/publisher"
	"bikeshare/utils"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[component: %s][status: ERROR] error loading config: %s", clientStr, err.Error())
	}

	if err := InitLogger(appConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChannel := utils.GetSignalChannel()

	var reportPublisher ReportPublisher
	if appConfig.Publisher.Enabled {
		rabbitMQ, err := communication.NewRabbitMQ(appConfig.Publisher.RabbitURL, appConfig.Publisher.PublishingConfig)
		if err != nil {
			log.Fatalf("[component: %s][status: ERROR] %s", clientStr, err.Error())
		}

		defer func(rabbitMQ *communication.RabbitMQ) {
			err := rabbitMQ.KillBadBunny()
			if err != nil {
				log.Errorf("[component: %s][status: ERROR] %s", clientStr, err.Error())
			}
		}(rabbitMQ)

		rabbitPublisher := publisher.NewReportPublisher(rabbitMQ, appConfig.Publisher.Queue)
		if err := rabbitPublisher.DeclareQueues(); err != nil {
			log.Fatalf("[component: %s][status: ERROR] %s", clientStr, err.Error())
		}
		reportPublisher = rabbitPublisher
	}

	client := NewClient(appConfig, os.Stdin, os.Stdout, reportPublisher)
	sessionDone := make(chan error, 1)
	go func() {
		sessionDone <- client.Run(ctx)
	}()

	select {
	case <-signalChannel:
		log.Infof("[component: %s] signal received, bye!", clientStr)
		cancel()
	case err := <-sessionDone:
		if err != nil {
			log.Errorf("[component: %s][status: ERROR] %s", clientStr, err.Error())
			return
		}
	}

	log.Debugf("[component: %s] Finish main.go", clientStr)
}
