package config

func NewDefaultConfig() *AudioRepoConfig {
	return &AudioRepoConfig{
		General: &GeneralConfig{
			LogDirectory: "logs",
			LogColors:    false,
			JsonLogs:     false,
			LogLevel:     "info",
		},
		Decode: &DecodeConfig{
			NumWorkers:   4,
			CacheMinutes: 30,
			MaxSizeBytes: 524288000, // 500mb
		},
		Render: &RenderConfig{
			ChannelWidth:  400,
			ChannelHeight: 300,
			BatchMaxN:     6,
			BatchRows:     2,
		},
		Datasets: &DatasetsConfig{
			CacheDirectory: "./dataset-cache",
			S3: &S3Config{
				Endpoint:     "",
				AccessKeyId:  "",
				AccessSecret: "",
				Ssl:          true,
			},
		},
	}
}
