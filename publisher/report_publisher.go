package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/domain/business/report"
)

const (
	publisherStr    = "report-publisher"
	contentTypeJson = "application/json"
	publishTimeout  = 5 * time.Second
)

// Publisher broker able to publish messages in queues. Implemented by communication.RabbitMQ
type Publisher interface {
	DeclareNonAnonymousQueues(queuesConfig []communication.QueueDeclarationConfig) error
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
}

// ReportPublisher sends reports as JSON to a queue
type ReportPublisher struct {
	publisher   Publisher
	queueConfig communication.QueueDeclarationConfig
}

func NewReportPublisher(publisher Publisher, queueConfig communication.QueueDeclarationConfig) *ReportPublisher {
	return &ReportPublisher{
		publisher:   publisher,
		queueConfig: queueConfig,
	}
}

func (rp *ReportPublisher) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][queue: %s][method: %s][status: ERROR] %s: %s", publisherStr, rp.queueConfig.Name, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][queue: %s][method: %s][status: OK] %s", publisherStr, rp.queueConfig.Name, method, message)
}

// DeclareQueues declares the output queue
func (rp *ReportPublisher) DeclareQueues() error {
	err := rp.publisher.DeclareNonAnonymousQueues([]communication.QueueDeclarationConfig{rp.queueConfig})
	if err != nil {
		log.Error(rp.getLogMessage("DeclareQueues", "error declaring queue", err))
		return err
	}

	log.Info(rp.getLogMessage("DeclareQueues", "queues declared correctly!", nil))
	return nil
}

// Publish sends the report to the output queue
func (rp *ReportPublisher) Publish(ctx context.Context, result *report.Report) error {
	reportBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error marshalling report: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = rp.publisher.PublishMessageInQueue(ctx, rp.queueConfig.Name, reportBytes, contentTypeJson)
	if err != nil {
		log.Error(rp.getLogMessage("Publish", "error publishing report", err))
		return fmt.Errorf("error publishing report in queue %s: %w", rp.queueConfig.Name, err)
	}

	log.Debug(rp.getLogMessage("Publish", fmt.Sprintf("report of %s published", result.GetMetadata().GetCity()), nil))
	return nil
}
