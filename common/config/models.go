package config

type AudioRepoConfig struct {
	General  *GeneralConfig  `yaml:"general"`
	Decode   *DecodeConfig   `yaml:"decode"`
	Render   *RenderConfig   `yaml:"render"`
	Datasets *DatasetsConfig `yaml:"datasets"`
}

type GeneralConfig struct {
	LogDirectory string `yaml:"logDirectory"`
	LogColors    bool   `yaml:"logColors"`
	JsonLogs     bool   `yaml:"jsonLogs"`
	LogLevel     string `yaml:"logLevel"`
}

type DecodeConfig struct {
	NumWorkers   int   `yaml:"numWorkers"`
	CacheMinutes int   `yaml:"cacheMinutes"`
	MaxSizeBytes int64 `yaml:"maxSizeBytes"`
}

type RenderConfig struct {
	ChannelWidth  int `yaml:"channelWidth"`
	ChannelHeight int `yaml:"channelHeight"`
	BatchMaxN     int `yaml:"batchMaxSamples"`
	BatchRows     int `yaml:"batchRows"`
}

type DatasetsConfig struct {
	CacheDirectory string    `yaml:"cacheDirectory"`
	S3             *S3Config `yaml:"s3"`
}

type S3Config struct {
	Endpoint     string `yaml:"endpoint"`
	AccessKeyId  string `yaml:"accessKeyId"`
	AccessSecret string `yaml:"accessSecret"`
	Ssl          bool   `yaml:"ssl"`
}
