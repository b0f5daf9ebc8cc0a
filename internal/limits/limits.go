package limits

// JSON size limits for API payloads and responses

const (
	// JSON is the standard size limit for API request/response payloads (1MB)
	JSON = 1 << 20

	// ErrorBody is the maximum size for error response bodies (1KB)
	// Used when parsing error messages from failed API calls
	ErrorBody = 1024

	// DescriptorFile caps how much of a package descriptor file is read (1MB)
	DescriptorFile = 1 << 20

	// SourceScan caps how much of a header/config file is read when
	// extracting the MCU family (256KB)
	SourceScan = 256 << 10
)
