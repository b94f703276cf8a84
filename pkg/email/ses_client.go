package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"
)

// SESAPI is the subset of the SES v2 client used by the sender.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesClient struct {
	api    SESAPI
	config Config
}

// NewSESClient creates an AWS SES v2 sender. Static credentials are used when both
// keys are configured, otherwise the default AWS credential chain applies.
func NewSESClient(ctx context.Context, cfg Config) (EmailSender, error) {
	if err := validateSender(cfg); err != nil {
		return nil, err
	}

	region := cfg.SESRegion
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.SESAccessKeyID != "" && cfg.SESSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SESAccessKeyID, cfg.SESSecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return NewSESClientFromAPI(sesv2.NewFromConfig(awsCfg), cfg)
}

// NewSESClientFromAPI wraps an existing SES v2 client.
func NewSESClientFromAPI(api SESAPI, cfg Config) (EmailSender, error) {
	if api == nil {
		return nil, fmt.Errorf("%w: SES client is required", ErrInvalidConfig)
	}
	if err := validateSender(cfg); err != nil {
		return nil, err
	}
	return &sesClient{api: api, config: cfg}, nil
}

func (c *sesClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	body := &types.Body{}
	if params.BodyText != "" {
		body.Text = &types.Content{Data: aws.String(params.BodyText), Charset: aws.String("UTF-8")}
	}
	if params.BodyHTML != "" {
		body.Html = &types.Content{Data: aws.String(params.BodyHTML), Charset: aws.String("UTF-8")}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.config.SenderEmail),
		Destination:      &types.Destination{ToAddresses: []string{params.SendTo}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(params.Subject), Charset: aws.String("UTF-8")},
				Body:    body,
			},
		},
	}
	if r := replyTo(params, c.config.ReplyToEmail); r != "" {
		input.ReplyToAddresses = []string{r}
	}
	if params.Tag != "" {
		input.EmailTags = []types.MessageTag{{Name: aws.String("category"), Value: aws.String(params.Tag)}}
	}

	if _, err := c.api.SendEmail(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return errors.Join(
				ErrFailedToSendEmail,
				fmt.Errorf("ses error: %s - %s", apiErr.ErrorCode(), apiErr.ErrorMessage()),
			)
		}
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
