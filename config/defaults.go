package config

// Default returns the configuration used when no file or environment
// overrides a value.
func Default() Config {
	return Config{
		Server: Server{
			Listen:               ":8000",
			MaxRequestBytes:      4096,
			ReadTimeoutSeconds:   30,
			ShutdownGraceSeconds: 30,
		},
		Paths: Paths{
			DataDir: "/var/lib/mixtaped/data",
			WorkDir: "/var/lib/mixtaped/work",
		},
		Transcoder: Transcoder{
			Binary:                 "ffmpeg",
			Bitrate:                "128k",
			PreviewDurationSeconds: 30,
		},
		Pipeline: Pipeline{
			StripSubpath: "128/",
		},
		Upload: Upload{
			Backend:   BackendLocal,
			LocalRoot: "/export/s3-mixtape2",
		},
		Counter: Counter{
			Backend: BackendFile,
			Path:    "/var/lib/mixtaped/mixtapes.counter",
			Redis: Redis{
				Addr: "localhost:6379",
				Key:  "mixtaped:namespace",
			},
		},
		Store: Store{
			DatabasePath: "/var/lib/mixtaped/mixtaped.db",
		},
		Publish: Publish{
			MaxAttempts:       20,
			MinBackoffMillis:  500,
			MaxBackoffSeconds: 30,
		},
		Hook: Hook{
			TimeoutSeconds: 300,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}
