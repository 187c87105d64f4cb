package configuration

import "github.com/adampresley/configinator"

type Config struct {
	AssetSource            string `flag:"assetsource" env:"ASSET_SOURCE" default:"local" description:"Where podcast images are read from. Valid values are 'local' and 's3'"`
	AssetDir               string `flag:"assetdir" env:"ASSET_DIR" default:"./assets" description:"Root directory for podcast images when ASSET_SOURCE is 'local'"`
	AwsEndpointUrl         string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion              string `flag:"awsregion" env:"AWS_REGION" default:"eu-central-1" description:"AWS region"`
	AwsAccessKeyId         string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey     string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket              string `flag:"awsbucket" env:"AWS_BUCKET" default:"podcast-landing" description:"S3 bucket"`
	CanonicalURL           string `flag:"canonicalurl" env:"CANONICAL_URL" default:"https://wdr.de/0630" description:"Page URL shared in og:url"`
	CatalogFile            string `flag:"catalog" env:"CATALOG_FILE" default:"" description:"Podcast catalog (YAML or JSON). Uses the embedded catalog when empty"`
	DefaultLocale          string `flag:"locale" env:"DEFAULT_LOCALE" default:"en" description:"Locale used when Accept-Language matches nothing. Valid values are 'en' and 'de'"`
	DeployURL              string `flag:"deployurl" env:"DEPLOY_URL" default:"" description:"Base URL of this deployment, used for absolute image URLs"`
	GenerateBlurVariants   bool   `flag:"blurvariants" env:"GENERATE_BLUR_VARIANTS" default:"true" description:"Create missing pre-blurred background images"`
	Host                   string `flag:"host" env:"HOST" default:"localhost:8081" description:"The address and port to bind the HTTP server to"`
	LegacyEngineSignatures string `flag:"legacyengines" env:"LEGACY_ENGINE_SIGNATURES" default:"MSIE 9,rv:11.0,MSIE 10" description:"Comma separated User-Agent fragments of browsers without CSS blur support"`
	LogLevel               string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxBlurWorkers         int    `flag:"mbw" env:"MAX_BLUR_WORKERS" default:"4" description:"Maximum number of concurrent blur variant workers"`
	MoreLinkURL            string `flag:"morelink" env:"MORE_LINK_URL" default:"https://www1.wdr.de/mediathek/audio/" description:"Target of the 'all podcasts' link"`
	PodcastImageFolder     string `flag:"pif" env:"PODCAST_IMAGE_FOLDER" default:"podcasts" description:"Folder holding podcast images in the asset store"`
	SiteURL                string `flag:"siteurl" env:"SITE_URL" default:"http://localhost:8081" description:"Public site URL, used when DEPLOY_URL is empty"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}

// BaseURL is the prefix for absolute image URLs in social metadata.
func (c Config) BaseURL() string {
	if c.DeployURL != "" {
		return c.DeployURL
	}

	return c.SiteURL
}
