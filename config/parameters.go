package config

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// LoadParameters exports every SSM parameter under prefix into the process
// environment. "/portfolio/prod/DB_PASSWORD" becomes DB_PASSWORD. Variables
// already set in the environment win over stored parameters.
func LoadParameters(ctx context.Context, prefix string) (int, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading aws config: %w", err)
	}
	return ExportParameters(ctx, ssm.NewFromConfig(cfg), prefix)
}

// ExportParameters does the work of LoadParameters with a given client and
// returns how many variables were set
func ExportParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	exported := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return exported, fmt.Errorf("reading parameters under %s: %w", prefix, err)
		}
		for _, p := range page.Parameters {
			key := envKey(aws.ToString(p.Name))
			if key == "" {
				continue
			}
			if _, set := os.LookupEnv(key); set {
				continue
			}
			if err := os.Setenv(key, aws.ToString(p.Value)); err != nil {
				return exported, err
			}
			exported++
		}
	}
	return exported, nil
}

func envKey(name string) string {
	key := path.Base(strings.TrimRight(name, "/"))
	if key == "." || key == "/" {
		return ""
	}
	return key
}
