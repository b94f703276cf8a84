package email

// Provider names accepted by NewSender.
const (
	ProviderSendmail = "sendmail"
	ProviderPostmark = "postmark"
	ProviderSES      = "ses"
	ProviderDev      = "dev"
)

// Config holds email delivery configuration.
// Only the fields of the selected Provider are required.
type Config struct {
	Provider     string `env:"EMAIL_PROVIDER" envDefault:"sendmail"`
	SenderEmail  string `env:"SENDER_EMAIL" envDefault:"Secret Santa <santa@localhost>"`
	ReplyToEmail string `env:"REPLY_TO_EMAIL" envDefault:"Santa's Helper <santa-helper@localhost>"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SESRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	SESAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SESSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`

	SendmailPath string `env:"SENDMAIL_PATH" envDefault:"/usr/sbin/sendmail"`

	DevOutputDir string `env:"EMAIL_DEV_DIR" envDefault:"./santa-mail"`
}
