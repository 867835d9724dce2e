package policyconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/philiph/saml-category-filter/internal/core/domain"
	"github.com/philiph/saml-category-filter/internal/core/ports"
)

// FilePolicySource loads a category policy from a local JSON or YAML file.
//
// The file is a flat mapping: the reserved keys "default", "strict" and
// "allowRequestedAttributes" hold the boolean switches, every other key is a
// category URI mapping to a list of attribute names:
//
//	default: false
//	strict: true
//	http://refeds.org/category/research-and-scholarship:
//	  - mail
//	  - displayName
type FilePolicySource struct {
	path    string
	logger  *zap.Logger
	metrics ports.MetricsRecorder
}

// FileOption is a functional option for configuring a FilePolicySource.
type FileOption func(*FilePolicySource)

// WithLogger returns an option that sets the logger for load events.
func WithLogger(logger *zap.Logger) FileOption {
	return func(s *FilePolicySource) {
		s.logger = logger
	}
}

// WithMetricsRecorder returns an option that records policy load attempts.
func WithMetricsRecorder(recorder ports.MetricsRecorder) FileOption {
	return func(s *FilePolicySource) {
		s.metrics = recorder
	}
}

// NewFilePolicySource creates a new file-based policy source.
func NewFilePolicySource(path string, opts ...FileOption) *FilePolicySource {
	s := &FilePolicySource{
		path:   path,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the policy file, validates it and returns the policy.
// Construction failures carry the domain error codes and abort initialization.
func (s *FilePolicySource) Load(ctx context.Context) (*domain.CategoryPolicy, error) {
	policy, err := s.load()
	if s.metrics != nil {
		count := 0
		if policy != nil {
			count = policy.CategoryCount()
		}
		s.metrics.RecordPolicyLoad(s.path, err == nil, count)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("category policy loaded",
		zap.String("path", s.path),
		zap.Int("categories", policy.CategoryCount()),
		zap.Bool("strict", policy.Strict()),
		zap.Bool("default", policy.DefaultWhenUnrequested()),
		zap.Bool("allow_requested_attributes", policy.AllowRequestedAttributes()),
	)
	return policy, nil
}

func (s *FilePolicySource) load() (*domain.CategoryPolicy, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	var config map[string]any
	ext := strings.ToLower(filepath.Ext(s.path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse YAML policy file: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse JSON policy file: %w", err)
		}
	}

	policy, err := domain.NewCategoryPolicyFromMap(config)
	if err != nil {
		return nil, fmt.Errorf("policy file %s: %w", s.path, err)
	}
	return policy, nil
}
