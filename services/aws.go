package services

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// ProbeAWS reports whether the default AWS configuration resolves, and the
// effective region. Used by the /test-aws connectivity endpoint.
func ProbeAWS(ctx context.Context, fallbackRegion string) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", err
	}
	region := cfg.Region
	if region == "" {
		region = fallbackRegion
	}
	return region, nil
}
