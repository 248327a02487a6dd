package httpx

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithResponseBody controls whether response bodies are dumped. Artifact
// downloads turn it off.
func WithResponseBody(dump bool) Option {
	return func(rt *LoggingRoundTripper) {
		rt.dumpResponseBody = dump
	}
}
