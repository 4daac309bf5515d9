package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// SessionOptions controla como a configuração do SDK é carregada.
type SessionOptions struct {
	Profile     string
	Region      string
	MaxAttempts int
}

// Session carrega a aws.Config uma única vez e a compartilha entre os repositórios.
type Session struct {
	mu   sync.Mutex
	opts SessionOptions

	once sync.Once
	cfg  aws.Config
	err  error
}

// NewSession creates a lazily loaded AWS session.
func NewSession(opts SessionOptions) *Session {
	return &Session{opts: opts}
}

// Configure troca as opções. Só tem efeito antes da primeira chamada a Config.
func (s *Session) Configure(opts SessionOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = opts
}

// Config returns the loaded aws.Config. Throttling retries are handled by the
// SDK retryer, configured through MaxAttempts.
func (s *Session) Config(ctx context.Context) (aws.Config, error) {
	s.once.Do(func() {
		s.mu.Lock()
		opts := s.opts
		s.mu.Unlock()

		var loadOpts []func(*config.LoadOptions) error
		if opts.Profile != "" {
			loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
		}
		if opts.Region != "" {
			loadOpts = append(loadOpts, config.WithRegion(opts.Region))
		}
		if opts.MaxAttempts > 0 {
			loadOpts = append(loadOpts, config.WithRetryMaxAttempts(opts.MaxAttempts))
		}

		cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			profile := opts.Profile
			if profile == "" {
				profile = "default"
			}
			s.err = fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
			return
		}
		s.cfg = cfg
	})
	return s.cfg, s.err
}
