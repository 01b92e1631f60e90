package notify

import (
	"context"
	"fmt"

	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

// EmailSender is the part of the SES client the e-mail notifier uses.
type EmailSender interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Email sends the access code through Amazon SES.
type Email struct {
	client EmailSender
	sender string
}

// NewSESClient loads an SES client for region. Empty keys fall back to the
// default AWS credential chain.
func NewSESClient(ctx context.Context, region, accessKeyID, secretAccessKey string) (*ses.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ses.NewFromConfig(cfg), nil
}

func NewEmail(client EmailSender, sender string) (*Email, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("ses client")
	}
	if sender == "" {
		return nil, errs.NewValueIsRequiredError("e-mail sender")
	}
	return &Email{client: client, sender: sender}, nil
}

// NotifyAccessCode skips customers without an e-mail address.
func (e *Email) NotifyAccessCode(ctx context.Context, notice ports.AccessCodeNotice) error {
	if notice.Email == "" {
		return nil
	}

	input := &ses.SendEmailInput{
		Source: aws.String(e.sender),
		Destination: &types.Destination{
			ToAddresses: []string{notice.Email},
		},
		Message: &types.Message{
			Subject: &types.Content{Charset: aws.String(charset), Data: aws.String(subject)},
			Body: &types.Body{
				Html: &types.Content{Charset: aws.String(charset), Data: aws.String(htmlBody(notice))},
				Text: &types.Content{Charset: aws.String(charset), Data: aws.String(textBody(notice))},
			},
		},
	}

	if _, err := e.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send to %s: %w", notice.Email, err)
	}
	return nil
}
