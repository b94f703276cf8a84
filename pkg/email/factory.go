package email

import (
	"context"
	"fmt"
)

// NewSender builds the sender selected by cfg.Provider.
func NewSender(ctx context.Context, cfg Config) (EmailSender, error) {
	switch cfg.Provider {
	case ProviderSendmail, "":
		s, err := NewSendmailSender(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ProviderPostmark:
		return NewPostmarkClient(cfg)
	case ProviderSES:
		return NewSESClient(ctx, cfg)
	case ProviderDev:
		return NewDevSender(cfg.DevOutputDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
