package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/aquaguard/water-monitor/internal/domain"
)

// SNSClient wraps AWS SNS for alert notifications.
type SNSClient struct {
	svc      *sns.Client
	topicArn string
	ctx      context.Context
}

func NewSNSClient(region, topicArn string) (*SNSClient, error) {
	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &SNSClient{
		svc:      sns.NewFromConfig(cfg),
		topicArn: topicArn,
		ctx:      ctx,
	}, nil
}

// SendAlert publishes a raw alert message to the SNS topic.
func (c *SNSClient) SendAlert(subject, message string) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(c.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	if _, err := c.svc.Publish(c.ctx, input); err != nil {
		return fmt.Errorf("failed to publish to SNS: %w", err)
	}
	return nil
}

// SendCriticalAssessment notifies operators about a zone whose risk index
// crossed the critical band.
func (c *SNSClient) SendCriticalAssessment(a *domain.Assessment) error {
	subject := fmt.Sprintf("Water Quality Alert: Zone %s CRITICAL", a.Zone)
	message := fmt.Sprintf(
		"Critical Water Quality Assessment\n\n"+
			"Zone: %s\n"+
			"Risk Index: %.1f (%s)\n"+
			"Root Cause: %s\n"+
			"Pipe Status: %s\n"+
			"Time: %s\n\n"+
			"Please investigate immediately.",
		a.Zone,
		a.Risk,
		a.Label,
		a.RootCause,
		a.Status,
		a.Timestamp.Format(time.RFC3339),
	)

	return c.SendAlert(subject, message)
}

// SendEarlyWarnings aggregates a zone's graded warnings into one
// notification, most urgent first.
func (c *SNSClient) SendEarlyWarnings(zone string, warnings []domain.EarlyWarning) error {
	if len(warnings) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Water Quality: %d early warnings for zone %s", len(warnings), zone)
	message := "Projected threshold breaches:\n\n"
	for i, w := range warnings {
		message += fmt.Sprintf("%d. [%s] %s\n", i+1, w.Severity, w.Message)
	}

	return c.SendAlert(subject, message)
}
